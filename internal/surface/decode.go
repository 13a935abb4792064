package surface

import (
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"

	"github.com/padworks/lppro/internal/layout"
	"github.com/padworks/lppro/internal/pad"
	"github.com/padworks/lppro/internal/wire"
)

// dispatch decodes one inbound MIDI message on the event loop.
// Malformed or foreign messages are dropped without touching state.
func (s *Surface) dispatch(raw []byte) {
	msg := midi.Message(raw)

	var (
		ch, key, vel uint8
		sys          []byte
	)
	switch {
	case msg.GetSysEx(&sys):
		s.handleSysEx(sys)
	case msg.GetNoteOn(&ch, &key, &vel):
		s.handleNoteOn(int(key), int(vel))
	case msg.GetNoteOff(&ch, &key, &vel):
		s.handleNoteOff(int(key), int(vel))
	case msg.GetControlChange(&ch, &key, &vel):
		s.handleController(int(key), int(vel))
	}
}

func (s *Surface) handleSysEx(raw []byte) {
	payload, ok := wire.Payload(raw)
	if !ok {
		return
	}

	switch payload[0] {
	case wire.TagLayout:
		if len(payload) < 2 {
			return
		}
		l, ok := layout.FromIndex(int(payload[1]))
		if !ok {
			s.log.WithField("index", payload[1]).Warn("ignoring illegal layout index")
			return
		}
		s.currentLayout = l
		s.log.WithField("layout", l).Info("current layout")
	default:
		// Unknown payload tags are not ours to interpret.
	}
}

func (s *Surface) handleNoteOn(note, velocity int) {
	// MIDI convention: note-on with velocity zero is a note-off.
	if velocity == 0 {
		s.handleNoteOff(note, velocity)
		return
	}

	x, y, ok := s.maps.NoteToXY(s.currentLayout, note)
	if !ok {
		s.log.WithFields(log.Fields{"note": note, "layout": s.currentLayout}).
			Debug("note without grid position")
		return
	}
	s.log.WithFields(log.Fields{"note": note, "x": x, "y": y, "velocity": velocity}).
		Debug("pad pressed")
	s.emit(PadEvent{ID: pad.GridID(y, x), X: x, Y: y, Velocity: velocity, Pressed: true})
}

func (s *Surface) handleNoteOff(note, velocity int) {
	x, y, ok := s.maps.NoteToXY(s.currentLayout, note)
	if !ok {
		return
	}
	s.log.WithFields(log.Fields{"note": note, "x": x, "y": y}).Debug("pad released")
	s.emit(PadEvent{ID: pad.GridID(y, x), X: x, Y: y, Velocity: velocity, Pressed: false})
}

// handleController resolves edge/function button traffic; their
// controller numbers are their pad identifiers.
func (s *Surface) handleController(controller, value int) {
	p := s.pads.ByID(pad.ID(controller))
	if p == nil || p.IsGrid() {
		s.log.WithFields(log.Fields{"controller": controller, "value": value}).
			Debug("controller without pad")
		return
	}
	s.log.WithFields(log.Fields{"pad": p.ID, "value": value}).Debug("button")
	s.emit(PadEvent{ID: p.ID, X: -1, Y: -1, Velocity: value, Pressed: value > 0})
}

func (s *Surface) emit(ev PadEvent) {
	if s.OnPadEvent != nil {
		s.OnPadEvent(ev)
	}
}
