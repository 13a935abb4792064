package surface

// StripableSlot addresses one host-side bindable target in the
// scrollable slot window.
type StripableSlot struct {
	X, Y int
}

// NoSlot is the sentinel for an out-of-range lookup.
var NoSlot = StripableSlot{X: -1, Y: -1}

// SetSlotTable replaces the slot window contents, indexed [x][y].
func (s *Surface) SetSlotTable(slots [][]StripableSlot) {
	s.do(func() { s.slots = slots })
}

// SetScrollOffsets moves the slot window.
func (s *Surface) SetScrollOffsets(x, y int) {
	s.do(func() { s.scrollX, s.scrollY = x, y })
}

// StripableSlotAt returns the slot behind a grid position after
// applying the scroll offsets, or NoSlot when either axis falls
// outside the table. All arithmetic and comparisons stay in signed
// ints so a negative offset sum can never sneak past the bounds
// check.
func (s *Surface) StripableSlotAt(x, y int) StripableSlot {
	slot := NoSlot
	if err := s.call(func() error { slot = s.stripableSlotAt(x, y); return nil }); err != nil {
		return NoSlot
	}
	return slot
}

func (s *Surface) stripableSlotAt(x, y int) StripableSlot {
	x += s.scrollX
	y += s.scrollY

	if x < 0 || x >= len(s.slots) {
		return NoSlot
	}
	if y < 0 || y >= len(s.slots[x]) {
		return NoSlot
	}
	return s.slots[x][y]
}
