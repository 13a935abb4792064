package pad

import "fmt"

// Registry holds every pad on the surface, keyed by identifier. It is
// built once at surface construction and never shrinks; pads are
// mutated in place by lighting commands.
type Registry struct {
	pads map[ID]*Pad
}

// Count is the full pad census: 64 grid pads, 40 edge pads and the
// shift pad.
const Count = 64 + 5*8 + 1

// NewRegistry constructs the complete pad catalog. A duplicate
// identifier in the static tables is a build-time contract violation
// and panics.
func NewRegistry() *Registry {
	r := &Registry{pads: make(map[ID]*Pad, Count)}

	for _, id := range edgeIDs {
		r.insert(newEdgePad(id))
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			id := GridID(row, col)
			r.insert(newGridPad(id, col, row))
		}
	}

	if len(r.pads) != Count {
		panic(fmt.Sprintf("pad: registry holds %d pads, want %d", len(r.pads), Count))
	}
	return r
}

func (r *Registry) insert(p *Pad) {
	if _, dup := r.pads[p.ID]; dup {
		panic(fmt.Sprintf("pad: duplicate pad id %d", p.ID))
	}
	r.pads[p.ID] = p
}

// ByID returns the pad with the given identifier, or nil if the
// identifier names no pad.
func (r *Registry) ByID(id ID) *Pad {
	return r.pads[id]
}

// Len reports the number of registered pads.
func (r *Registry) Len() int {
	return len(r.pads)
}

// Each calls fn for every registered pad, in no particular order.
func (r *Registry) Each(fn func(*Pad)) {
	for _, p := range r.pads {
		fn(p)
	}
}
