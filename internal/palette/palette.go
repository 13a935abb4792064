// Package palette maps RGB colors onto the Launchpad Pro MK3's
// indexed color palette. The firmware only accepts palette indices in
// lighting commands, so host-side colors are snapped to the closest
// defined entry.
package palette

import "github.com/lucasb-eyer/go-colorful"

// Index is a 7-bit palette position understood by the firmware.
type Index int

// Named entries of the firmware palette, from the programmer's
// manual color chart.
const (
	Black    Index = 0
	DarkGrey Index = 1
	Grey     Index = 2
	White    Index = 3
	Salmon   Index = 4
	Red      Index = 5
	DimRed   Index = 7
	Amber    Index = 9
	DimAmber Index = 11
	Yellow   Index = 13
	Lime     Index = 17
	Green    Index = 21
	DimGreen Index = 23
	Mint     Index = 29
	Cyan     Index = 33
	Sky      Index = 37
	Blue     Index = 41
	DeepBlue Index = 45
	Violet   Index = 49
	Magenta  Index = 53
	Pink     Index = 57
	Orange   Index = 60
)

// rgb holds the reference color of each named entry, normalized to
// [0,1] channels.
var rgb = map[Index]colorful.Color{
	Black:    {R: 0.00, G: 0.00, B: 0.00},
	DarkGrey: {R: 0.12, G: 0.12, B: 0.12},
	Grey:     {R: 0.49, G: 0.49, B: 0.49},
	White:    {R: 1.00, G: 1.00, B: 1.00},
	Salmon:   {R: 1.00, G: 0.30, B: 0.30},
	Red:      {R: 1.00, G: 0.00, B: 0.00},
	DimRed:   {R: 0.35, G: 0.00, B: 0.00},
	Amber:    {R: 1.00, G: 0.60, B: 0.00},
	DimAmber: {R: 0.35, G: 0.20, B: 0.00},
	Yellow:   {R: 1.00, G: 1.00, B: 0.00},
	Lime:     {R: 0.55, G: 1.00, B: 0.00},
	Green:    {R: 0.00, G: 1.00, B: 0.00},
	DimGreen: {R: 0.00, G: 0.35, B: 0.00},
	Mint:     {R: 0.00, G: 1.00, B: 0.50},
	Cyan:     {R: 0.00, G: 1.00, B: 1.00},
	Sky:      {R: 0.00, G: 0.60, B: 1.00},
	Blue:     {R: 0.00, G: 0.25, B: 1.00},
	DeepBlue: {R: 0.00, G: 0.00, B: 1.00},
	Violet:   {R: 0.50, G: 0.00, B: 1.00},
	Magenta:  {R: 1.00, G: 0.00, B: 1.00},
	Pink:     {R: 1.00, G: 0.30, B: 0.60},
	Orange:   {R: 1.00, G: 0.40, B: 0.00},
}

// Nearest returns the defined palette entry closest to the given
// 8-bit RGB color, by perceptual (Lab) distance.
func Nearest(r, g, b uint8) Index {
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := Black
	bestDist := -1.0
	for idx, ref := range rgb {
		d := want.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			best = idx
			bestDist = d
		}
	}
	return best
}

// RGB returns the reference color of a named entry as 8-bit channels.
// Unknown indices read as black.
func RGB(idx Index) (uint8, uint8, uint8) {
	c, ok := rgb[idx]
	if !ok {
		return 0, 0, 0
	}
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}
