package surface

import (
	"time"

	"github.com/pkg/errors"

	"github.com/padworks/lppro/internal/layout"
	"github.com/padworks/lppro/internal/ports"
	"github.com/padworks/lppro/internal/wire"
)

const (
	drainTimeout = 10 * time.Second
	drainPoll    = 500 * time.Millisecond
)

// Activate acquires both port pairs, wires the decoder, and drives
// the device into DAW mode. On any acquisition failure the surface
// stays inactive and everything acquired so far is released.
func (s *Surface) Activate() error {
	return s.call(s.activate)
}

// Deactivate returns the device to standalone operation and releases
// the ports.
func (s *Surface) Deactivate() {
	_ = s.call(func() error { s.deactivate(); return nil })
}

// Active reports whether the surface currently holds its ports.
func (s *Surface) Active() bool {
	var a bool
	_ = s.call(func() error { a = s.active; return nil })
	return a
}

func (s *Surface) activate() error {
	if s.active {
		return nil
	}

	if err := s.portsAcquire(); err != nil {
		s.portsRelease()
		return errors.Wrap(err, "acquire ports")
	}

	s.connectDAWPorts()

	// Inbound decode runs on the event loop; the port handler only
	// marshals bytes across.
	if err := s.directIn.SetHandler(s.enqueue); err != nil {
		s.portsRelease()
		return errors.Wrap(err, "attach input handler")
	}

	// Ask the device for its current layout before forcing the
	// default; the echoed report reconciles currentLayout.
	s.write(wire.LayoutQuery())

	s.setDeviceMode(DAW)
	s.dawWrite(wire.SetLayout(byte(layout.Session), 0))

	if s.OnSelectionChanged != nil {
		s.OnSelectionChanged()
	}

	s.active = true
	s.log.Info("surface active")
	return nil
}

func (s *Surface) deactivate() {
	if !s.active {
		return
	}
	s.setDeviceMode(Standalone)
	s.portsRelease()
	s.active = false
	s.log.Info("surface inactive")
}

// enqueue marshals inbound port bytes onto the event loop.
func (s *Surface) enqueue(data []byte) {
	select {
	case s.inCh <- data:
	case <-s.t.Dying():
	}
}

func (s *Surface) portsAcquire() error {
	if s.engine == nil {
		return errors.New("no engine")
	}

	directIn, err := s.engine.OpenInput(s.opts.DirectPortPattern)
	if err != nil {
		return err
	}
	s.directIn = directIn

	directOut, err := s.engine.OpenOutput(s.opts.DirectPortPattern)
	if err != nil {
		return err
	}
	s.directOut = directOut

	dawIn, err := s.engine.RegisterInput(s.state.DAWInPort)
	if err != nil {
		return err
	}
	s.dawIn = dawIn

	dawOut, err := s.engine.RegisterOutput(s.state.DAWOutPort)
	if err != nil {
		return err
	}
	s.dawOut = dawOut
	return nil
}

// connectDAWPorts auto-connects the registered DAW pair to the
// matching hardware ports. Idempotent; a missing hardware side is not
// fatal, the ports connect when the device shows up.
func (s *Surface) connectDAWPorts() {
	in, inOK := s.dawIn.(ports.Connector)
	out, outOK := s.dawOut.(ports.Connector)
	if !inOK || !outOK {
		return
	}
	if in.Connected() && out.Connected() {
		return
	}

	if err := in.Connect(s.opts.DAWPortPattern); err != nil {
		s.log.WithError(err).Debug("daw input not connected")
	}
	if err := out.Connect(s.opts.DAWPortPattern); err != nil {
		s.log.WithError(err).Debug("daw output not connected")
	}
}

func (s *Surface) portsRelease() {
	// Let in-flight outbound data reach the wire before teardown.
	// Bounded: teardown proceeds whether or not the drain finished.
	if d, ok := s.dawOut.(ports.Drainer); ok {
		if !d.Drain(drainTimeout, drainPoll) {
			s.log.Warn("daw output did not drain before release")
		}
	}

	for _, p := range []interface{ Close() error }{s.dawIn, s.dawOut, s.directIn, s.directOut} {
		if p == nil {
			continue
		}
		if s.engine != nil {
			if err := s.engine.Unregister(p); err != nil {
				s.log.WithError(err).Warn("port release failed")
			}
		} else if err := p.Close(); err != nil {
			s.log.WithError(err).Warn("port close failed")
		}
	}

	s.dawIn, s.dawOut = nil, nil
	s.directIn, s.directOut = nil, nil
}
