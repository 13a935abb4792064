package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padworks/lppro/internal/config"
)

func slotSurface(t *testing.T) *Surface {
	t.Helper()
	s := New(nil, config.NewState(), DefaultOptions())
	t.Cleanup(func() { _ = s.Close() })

	slots := make([][]StripableSlot, 8)
	for x := range slots {
		slots[x] = make([]StripableSlot, 8)
		for y := range slots[x] {
			slots[x][y] = StripableSlot{X: x, Y: y}
		}
	}
	s.SetSlotTable(slots)
	s.barrier()
	return s
}

func TestSlotLookupWithinBounds(t *testing.T) {
	s := slotSurface(t)

	assert.Equal(t, StripableSlot{X: 3, Y: 5}, s.StripableSlotAt(3, 5))
	assert.Equal(t, StripableSlot{X: 0, Y: 0}, s.StripableSlotAt(0, 0))
	assert.Equal(t, StripableSlot{X: 7, Y: 7}, s.StripableSlotAt(7, 7))
}

func TestSlotLookupAppliesScrollOffsets(t *testing.T) {
	s := slotSurface(t)

	s.SetScrollOffsets(2, 3)
	assert.Equal(t, StripableSlot{X: 2, Y: 3}, s.StripableSlotAt(0, 0))
}

func TestSlotLookupOutOfRangeReturnsSentinel(t *testing.T) {
	s := slotSurface(t)

	assert.Equal(t, NoSlot, s.StripableSlotAt(8, 0))
	assert.Equal(t, NoSlot, s.StripableSlotAt(0, 8))

	s.SetScrollOffsets(6, 0)
	assert.Equal(t, NoSlot, s.StripableSlotAt(4, 0))
}

func TestSlotLookupNegativeCoordinateReturnsSentinel(t *testing.T) {
	s := slotSurface(t)

	// A negative offset sum must not wrap past the bounds check.
	s.SetScrollOffsets(-3, -3)
	assert.Equal(t, NoSlot, s.StripableSlotAt(1, 1))
	assert.Equal(t, StripableSlot{X: 1, Y: 1}, s.StripableSlotAt(4, 4))
}

func TestSlotLookupEmptyTable(t *testing.T) {
	s := New(nil, config.NewState(), DefaultOptions())
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, NoSlot, s.StripableSlotAt(0, 0))
}
