package pad

import "github.com/padworks/lppro/internal/wire"

// ID identifies one physical control on the surface. The 8x8 grid
// uses the firmware's decimal coordinate scheme (11 + row*10 + col);
// the edge buttons have fixed identifiers from the programmer's
// manual.
type ID int

const (
	// Bottom function row, right to left on the hardware.
	RecordArm ID = 1
	Mute      ID = 2
	Solo      ID = 3
	Volume    ID = 4
	Pan       ID = 5
	Sends     ID = 6
	Device    ID = 7
	StopClip  ID = 8

	// Left column, bottom to top.
	CaptureMIDI ID = 10
	Play        ID = 20
	FixedLength ID = 30
	Quantize    ID = 40
	Duplicate   ID = 50
	Clear       ID = 60
	Down        ID = 70
	Up          ID = 80

	// Right column, bottom to top.
	PrintToClip     ID = 19
	MicroStep       ID = 29
	Mutation        ID = 39
	Probability     ID = 49
	Velocity        ID = 59
	PatternSettings ID = 69
	Steps           ID = 79
	Patterns        ID = 89

	// Top row, left to right, preceded by the shift pad.
	Shift     ID = 90
	Left      ID = 91
	Right     ID = 92
	Session   ID = 93
	Note      ID = 94
	Chord     ID = 95
	Custom    ID = 96
	Sequencer ID = 97
	Projects  ID = 98

	// Second-from-bottom function row.
	Lower1 ID = 101
	Lower2 ID = 102
	Lower3 ID = 103
	Lower4 ID = 104
	Lower5 ID = 105
	Lower6 ID = 106
	Lower7 ID = 107
	Lower8 ID = 108
)

// edgeIDs lists every fixed-position control, shift included.
var edgeIDs = []ID{
	Shift, Left, Right, Session, Note, Chord, Custom, Sequencer, Projects,
	Patterns, Steps, PatternSettings, Velocity, Probability, Mutation, MicroStep, PrintToClip,
	StopClip, Device, Sends, Pan, Volume, Solo, Mute, RecordArm,
	CaptureMIDI, Play, FixedLength, Quantize, Duplicate, Clear, Down, Up,
	Lower1, Lower2, Lower3, Lower4, Lower5, Lower6, Lower7, Lower8,
}

// ColorMode selects how the firmware animates a pad's color.
type ColorMode int

const (
	Static ColorMode = iota
	Flashing
	Pulsing
	Off
)

func (m ColorMode) wireType() byte {
	switch m {
	case Flashing:
		return wire.LightFlashing
	case Pulsing:
		return wire.LightPulsing
	default:
		return wire.LightStatic
	}
}

// Pad is the mutable runtime state of one physical control. Grid pads
// carry their (column, row) position; edge pads do not.
type Pad struct {
	ID   ID
	X    int // column, 0..7; -1 for edge pads
	Y    int // row, 0..7; -1 for edge pads
	Col  int
	Mode ColorMode
}

func newEdgePad(id ID) *Pad {
	return &Pad{ID: id, X: -1, Y: -1}
}

func newGridPad(id ID, col, row int) *Pad {
	return &Pad{ID: id, X: col, Y: row}
}

// IsGrid reports whether the pad is part of the 8x8 grid.
func (p *Pad) IsGrid() bool {
	return p.X >= 0
}

// Set updates the pad's tracked color and lighting mode.
func (p *Pad) Set(color int, mode ColorMode) {
	p.Col = color
	p.Mode = mode
}

// StateMsg is the pad's current wire-state message, ready for
// transmission.
func (p *Pad) StateMsg() []byte {
	color := byte(p.Col)
	if p.Mode == Off {
		color = 0
	}
	return wire.PadState(p.Mode.wireType(), byte(p.ID), color)
}

// GridID derives the grid pad identifier for a (row, col) position.
func GridID(row, col int) ID {
	return ID(11 + row*10 + col)
}
