package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestPrimaries(t *testing.T) {
	assert.Equal(t, Red, Nearest(255, 0, 0))
	assert.Equal(t, Green, Nearest(0, 255, 0))
	assert.Equal(t, DeepBlue, Nearest(0, 0, 255))
	assert.Equal(t, White, Nearest(255, 255, 255))
	assert.Equal(t, Black, Nearest(0, 0, 0))
}

func TestNearestOffWhite(t *testing.T) {
	assert.Equal(t, White, Nearest(250, 248, 245))
}

func TestRGBUnknownIndexIsBlack(t *testing.T) {
	r, g, b := RGB(Index(99))
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestRGBRoundTrip(t *testing.T) {
	r, g, b := RGB(Red)
	assert.Equal(t, Red, Nearest(r, g, b))
}
