package surface

import (
	"time"

	"github.com/padworks/lppro/internal/wire"
)

// DeviceMode is the device's operating mode. Transitions are driven
// only by the surface; the device never requests one.
type DeviceMode int

const (
	Standalone DeviceMode = iota
	DAW
	Programmer
)

func (m DeviceMode) String() string {
	switch m {
	case Standalone:
		return "Standalone"
	case DAW:
		return "DAW"
	case Programmer:
		return "Programmer"
	}
	return "Unknown"
}

// standaloneSettle is the interval the firmware needs between the
// live-state reset and the DAW-disable command. Sending them
// back-to-back risks the device dropping the second.
const standaloneSettle = 100 * time.Millisecond

// SetDeviceMode drives the device into the given mode. Mode commands
// are fire-and-forget and go out on the direct device port.
func (s *Surface) SetDeviceMode(m DeviceMode) {
	s.do(func() { s.setDeviceMode(m) })
}

func (s *Surface) setDeviceMode(m DeviceMode) {
	// LP Pro MK3 programmer's manual, pages 14 and 18.
	switch m {
	case Standalone:
		s.log.Info("entering standalone mode")
		s.write(wire.LiveState())
		s.settle(standaloneSettle)
		s.write(wire.DAWMode(false))

	case DAW:
		// No live-state reset on this path; the firmware only
		// needs it when leaving DAW mode.
		s.log.Info("entering daw mode")
		s.write(wire.DAWMode(true))

	case Programmer:
		s.log.Info("entering programmer mode")
		s.write(wire.ProgrammerState())
	}
	s.mode = m
}

// settle blocks the event loop for the firmware settle interval,
// giving up early if the surface is shutting down hard.
func (s *Surface) settle(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.t.Dying():
	}
}
