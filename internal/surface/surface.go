// Package surface implements the Launchpad Pro MK3 control surface
// driver: pad registry, layout-aware coordinate decoding, the device
// mode handshake, and port orchestration. One event-loop goroutine
// per surface owns all mutable state; inbound MIDI and API calls are
// marshalled onto it, so no locking is needed inside the driver.
package surface

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/tomb.v2"

	"github.com/padworks/lppro/internal/config"
	"github.com/padworks/lppro/internal/layout"
	"github.com/padworks/lppro/internal/pad"
	"github.com/padworks/lppro/internal/ports"
	"github.com/padworks/lppro/internal/wire"
)

// PadEvent is a logical press or release, resolved from wire note or
// controller numbers. Grid events carry (X, Y); edge button events
// have X = Y = -1.
type PadEvent struct {
	ID       pad.ID
	X, Y     int
	Velocity int
	Pressed  bool
}

// Options configures a surface.
type Options struct {
	// DirectPortPattern matches the device's own MIDI endpoints.
	DirectPortPattern string
	// DAWPortPattern matches the hardware ports the registered DAW
	// pair auto-connects to.
	DAWPortPattern string
}

// DefaultOptions matches the port names the Launchpad Pro MK3
// exposes on Linux.
func DefaultOptions() Options {
	return Options{
		DirectPortPattern: "Launchpad Pro MK3 MIDI 1",
		DAWPortPattern:    "Launchpad Pro MK3 MIDI 3",
	}
}

// Surface is one Launchpad Pro MK3 instance.
type Surface struct {
	log  *log.Entry
	opts Options

	engine *ports.Engine
	state  *config.State

	pads          *pad.Registry
	maps          *layout.Maps
	currentLayout layout.Layout
	mode          DeviceMode

	scrollX, scrollY int
	slots            [][]StripableSlot

	directIn  ports.Input
	directOut ports.Output
	dawIn     ports.Input
	dawOut    ports.Output

	active bool

	t     tomb.Tomb
	reqCh chan func()
	inCh  chan []byte

	// OnPadEvent, when set, receives every decoded pad press and
	// release. It runs on the surface's event loop.
	OnPadEvent func(PadEvent)

	// OnSelectionChanged is the host's current-selection
	// reconciliation hook, re-run on every activation.
	OnSelectionChanged func()
}

// New constructs an inactive surface and starts its event loop.
func New(engine *ports.Engine, state *config.State, opts Options) *Surface {
	s := &Surface{
		log:           log.WithField("surface", "lppro"),
		opts:          opts,
		engine:        engine,
		state:         state,
		pads:          pad.NewRegistry(),
		maps:          layout.BuildMaps(),
		currentLayout: layout.Session,
		mode:          Standalone,
		reqCh:         make(chan func(), 128),
		inCh:          make(chan []byte, 256),
	}
	s.t.Go(s.loop)
	return s
}

func (s *Surface) loop() error {
	for {
		select {
		case <-s.t.Dying():
			return nil
		case fn := <-s.reqCh:
			fn()
		case raw := <-s.inCh:
			s.dispatch(raw)
		}
	}
}

// do schedules fn on the event loop without waiting for it.
func (s *Surface) do(fn func()) {
	select {
	case s.reqCh <- fn:
	case <-s.t.Dying():
	}
}

// call runs fn on the event loop and waits for its result.
func (s *Surface) call(fn func() error) error {
	errCh := make(chan error, 1)
	select {
	case s.reqCh <- func() { errCh <- fn() }:
	case <-s.t.Dying():
		return errors.New("surface stopped")
	}
	select {
	case err := <-errCh:
		return err
	case <-s.t.Dying():
		return errors.New("surface stopped")
	}
}

// write sends a mode-plane command on the direct device port.
func (s *Surface) write(data []byte) {
	if s.directOut == nil {
		return
	}
	if err := s.directOut.Write(data); err != nil {
		s.log.WithError(err).Warn("direct port write failed")
	}
}

// dawWrite sends a data-plane command on the DAW port pair.
func (s *Surface) dawWrite(data []byte) {
	if s.dawOut == nil {
		return
	}
	if err := s.dawOut.Write(data); err != nil {
		s.log.WithError(err).Warn("daw port write failed")
	}
}

// LightPad sets one pad's color and lighting mode and transmits its
// state immediately. Unknown identifiers are ignored.
func (s *Surface) LightPad(id pad.ID, color int, mode pad.ColorMode) {
	s.do(func() { s.lightPad(id, color, mode) })
}

func (s *Surface) lightPad(id pad.ID, color int, mode pad.ColorMode) {
	p := s.pads.ByID(id)
	if p == nil {
		return
	}
	p.Set(color, mode)
	s.dawWrite(p.StateMsg())
}

// PadOff turns one pad off.
func (s *Surface) PadOff(id pad.ID) {
	s.do(func() { s.lightPad(id, 0, pad.Static) })
}

// AllPadsOff clears the whole grid with a single bulk message. The
// per-pad tracked state is not updated; see the divergence note in
// DESIGN.md.
func (s *Surface) AllPadsOff() {
	s.do(func() { s.dawWrite(wire.AllPadsOff()) })
}

// AllPadsOn lights the whole grid in one palette color, bypassing
// per-pad state like AllPadsOff.
func (s *Surface) AllPadsOn(color int) {
	s.do(func() { s.dawWrite(wire.AllPadsOn(byte(color))) })
}

// SetLayout asks the device to switch layouts. The local current
// layout is not updated here: the device is authoritative and the
// change lands when it echoes a layout report.
func (s *Surface) SetLayout(l layout.Layout, page int) {
	s.do(func() { s.dawWrite(wire.SetLayout(byte(l), byte(page))) })
}

// CurrentLayout returns the device-confirmed layout.
func (s *Surface) CurrentLayout() layout.Layout {
	var l layout.Layout
	if err := s.call(func() error { l = s.currentLayout; return nil }); err != nil {
		return layout.Session
	}
	return l
}

// Mode returns the last mode the surface drove the device into.
func (s *Surface) Mode() DeviceMode {
	var m DeviceMode
	if err := s.call(func() error { m = s.mode; return nil }); err != nil {
		return Standalone
	}
	return m
}

// ScrollText scrolls text across the grid. A nonzero speed issues the
// firmware's follow-up speed message, so two wire messages go out for
// one request.
func (s *Surface) ScrollText(text string, color int, loop bool, speed float64) {
	s.do(func() {
		for _, msg := range wire.ScrollText(text, byte(color), loop, speed) {
			s.dawWrite(msg)
		}
	})
}

// Pads exposes the pad registry for read-only inspection.
func (s *Surface) Pads() *pad.Registry {
	return s.pads
}

// Close deactivates the surface if needed and stops the event loop.
func (s *Surface) Close() error {
	_ = s.call(func() error { s.deactivate(); return nil })
	s.t.Kill(nil)
	return s.t.Wait()
}
