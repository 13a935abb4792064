package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padworks/lppro/internal/wire"
)

func TestGridIDFormula(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			assert.Equal(t, ID(11+row*10+col), GridID(row, col))
		}
	}
}

func TestRegistryCensus(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, Count, r.Len())
	assert.Equal(t, 105, r.Len())

	grid, edge := 0, 0
	r.Each(func(p *Pad) {
		if p.IsGrid() {
			grid++
		} else {
			edge++
		}
	})
	assert.Equal(t, 64, grid)
	assert.Equal(t, 41, edge)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	p := r.ByID(GridID(3, 5))
	require.NotNil(t, p)
	assert.Equal(t, 5, p.X)
	assert.Equal(t, 3, p.Y)

	shift := r.ByID(Shift)
	require.NotNil(t, shift)
	assert.False(t, shift.IsGrid())

	assert.Nil(t, r.ByID(ID(9)))
	assert.Nil(t, r.ByID(ID(200)))
}

func TestPadStateMsg(t *testing.T) {
	p := &Pad{ID: GridID(0, 0)}
	p.Set(37, Pulsing)

	msg := p.StateMsg()
	assert.Equal(t, wire.PadState(wire.LightPulsing, 11, 37), msg)
}

func TestPadOffStateMsg(t *testing.T) {
	p := &Pad{ID: Play}
	p.Set(21, Off)

	msg := p.StateMsg()
	assert.Equal(t, wire.PadState(wire.LightStatic, byte(Play), 0), msg)
}
