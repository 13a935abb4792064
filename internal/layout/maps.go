package layout

// Bidirectional lookup tables between wire note numbers and logical
// grid coordinates, per layout. The firmware assigns each layout its
// own note numbering for the 8x8 grid; only the layouts with defined
// tables below are populated, the rest resolve to nothing.

const (
	gridCells = 64
	// Note numbers are 7-bit; the inverse table is indexed with a
	// stride of 127, so a note must be < 127 to be resolvable.
	noteStride = 127

	unmapped = -1
)

// noteTables holds the firmware-defined note assignment for each
// layout that has one, as [row][col] grids with row 0 at the top of
// the device.
var noteTables = map[Layout][8][8]int{
	Session: {
		{0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58},
		{0x47, 0x48, 0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e},
		{0x3d, 0x3e, 0x3f, 0x40, 0x41, 0x42, 0x43, 0x44},
		{0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a},
		{0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30},
		{0x1f, 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26},
		{0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c},
		{0xb, 0xc, 0xe, 0xd, 0xf, 0x10, 0x11, 0x12},
	},
	Programmer: {
		{0xb, 0xc, 0xd, 0xe, 0xf, 0x10, 0x11, 0x12},
		{0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c},
		{0x1f, 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26},
		{0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30},
		{0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a},
		{0x3d, 0x3e, 0x3f, 0x40, 0x41, 0x42, 0x43, 0x44},
		{0x47, 0x48, 0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e},
		{0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58},
	},
}

// Maps is the pair of flat lookup tables. Built once at surface
// construction; immutable afterwards.
type Maps struct {
	xyNote []int // forwardIndex(layout, col, row) -> note
	noteXY []int // inverseIndex(layout, note) -> row*8+col, or unmapped
}

// BuildMaps populates the forward table from the firmware note tables
// and derives the inverse table from it.
func BuildMaps() *Maps {
	m := &Maps{
		xyNote: make([]int, len(All)*gridCells),
		noteXY: make([]int, len(All)*noteStride),
	}
	for i := range m.xyNote {
		m.xyNote[i] = unmapped
	}
	for i := range m.noteXY {
		m.noteXY[i] = unmapped
	}

	for l, table := range noteTables {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				note := table[row][col]
				m.xyNote[forwardIndex(l, col, row)] = note
				m.noteXY[inverseIndex(l, note)] = row*8 + col
			}
		}
	}
	return m
}

func forwardIndex(l Layout, col, row int) int {
	return int(l)*gridCells + row*8 + col
}

func inverseIndex(l Layout, note int) int {
	return int(l)*noteStride + note
}

// XYToNote resolves a grid position to the wire note number for the
// given layout. ok is false when the layout has no table or the
// position is out of the grid.
func (m *Maps) XYToNote(l Layout, col, row int) (int, bool) {
	if col < 0 || col > 7 || row < 0 || row > 7 || l < 0 || int(l) >= len(All) {
		return 0, false
	}
	note := m.xyNote[forwardIndex(l, col, row)]
	return note, note != unmapped
}

// NoteToXY resolves a wire note number to (col, row) for the given
// layout. Notes >= 127 are outside the table and never resolve, as
// are notes the layout does not assign.
func (m *Maps) NoteToXY(l Layout, note int) (int, int, bool) {
	if note < 0 || note >= noteStride || l < 0 || int(l) >= len(All) {
		return 0, 0, false
	}
	coord := m.noteXY[inverseIndex(l, note)]
	if coord == unmapped {
		return 0, 0, false
	}
	return coord % 8, coord / 8, true
}
