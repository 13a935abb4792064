package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripPopulatedLayouts(t *testing.T) {
	m := BuildMaps()

	for l := range noteTables {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				note, ok := m.XYToNote(l, col, row)
				require.True(t, ok, "layout %v (%d,%d)", l, col, row)

				x, y, ok := m.NoteToXY(l, note)
				require.True(t, ok, "layout %v note %#x", l, note)
				assert.Equal(t, col, x)
				assert.Equal(t, row, y)
			}
		}
	}
}

func TestForwardIndexInjective(t *testing.T) {
	seen := make(map[int]bool)
	for _, l := range All {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				idx := forwardIndex(l, col, row)
				assert.False(t, seen[idx], "duplicate index %d", idx)
				seen[idx] = true
			}
		}
	}
	assert.Len(t, seen, len(All)*64)
}

func TestNoteToXYBounds(t *testing.T) {
	m := BuildMaps()

	// Notes at or past the table stride never resolve.
	_, _, ok := m.NoteToXY(Session, 127)
	assert.False(t, ok)
	_, _, ok = m.NoteToXY(Session, 200)
	assert.False(t, ok)
	_, _, ok = m.NoteToXY(Session, -1)
	assert.False(t, ok)
}

func TestNoteToXYUnpopulatedLayout(t *testing.T) {
	m := BuildMaps()

	// Fader has no note table; lookups must fail cleanly.
	_, _, ok := m.NoteToXY(Fader, 0x51)
	assert.False(t, ok)
}

func TestNoteToXYUnassignedNote(t *testing.T) {
	m := BuildMaps()

	// 0x13 sits between the bottom two session rows.
	_, _, ok := m.NoteToXY(Session, 0x13)
	assert.False(t, ok)
}

func TestSessionCorners(t *testing.T) {
	m := BuildMaps()

	note, ok := m.XYToNote(Session, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0x51, note)

	note, ok = m.XYToNote(Session, 7, 7)
	require.True(t, ok)
	assert.Equal(t, 0x12, note)
}

func TestFromIndex(t *testing.T) {
	l, ok := FromIndex(0)
	require.True(t, ok)
	assert.Equal(t, Session, l)

	l, ok = FromIndex(17)
	require.True(t, ok)
	assert.Equal(t, Programmer, l)

	_, ok = FromIndex(len(All))
	assert.False(t, ok)
	_, ok = FromIndex(-1)
	assert.False(t, ok)
}
