package ports

import (
	"regexp"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Engine owns the MIDI driver and all port registrations. Port
// registration and unregistration mutate the driver's port graph, so
// both run under the engine's process-wide lock.
type Engine struct {
	drv *rtmididrv.Driver

	mu    sync.Mutex // the process lock for port (de)registration
	owned []interface{ Close() error }
}

// NewEngine initializes the rtmidi driver.
func NewEngine() (*Engine, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, errors.Wrap(err, "initialize rtmidi driver")
	}
	return &Engine{drv: drv}, nil
}

// FindPorts returns the names of ports whose name matches the given
// pattern and direction flags.
func (e *Engine) FindPorts(pattern string, flags Flag) []string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.WithError(err).WithField("pattern", pattern).Warn("bad port pattern")
		return nil
	}

	var names []string
	if flags&IsInput != 0 {
		ins, err := e.drv.Ins()
		if err != nil {
			log.WithError(err).Warn("cannot list input ports")
		}
		for _, in := range ins {
			if re.MatchString(in.String()) {
				names = append(names, in.String())
			}
		}
	}
	if flags&IsOutput != 0 {
		outs, err := e.drv.Outs()
		if err != nil {
			log.WithError(err).Warn("cannot list output ports")
		}
		for _, out := range outs {
			if re.MatchString(out.String()) {
				names = append(names, out.String())
			}
		}
	}
	return names
}

// OpenInput opens the first hardware input port matching the pattern.
func (e *Engine) OpenInput(pattern string) (*AsyncIn, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	in, err := e.findIn(pattern)
	if err != nil {
		return nil, err
	}
	p := newAsyncIn(e, in, in.String())
	e.owned = append(e.owned, p)
	return p, nil
}

// OpenOutput opens the first hardware output port matching the
// pattern.
func (e *Engine) OpenOutput(pattern string) (*AsyncOut, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.findOut(pattern)
	if err != nil {
		return nil, err
	}
	if err := out.Open(); err != nil {
		return nil, errors.Wrapf(err, "open output %q", out.String())
	}
	p := newAsyncOut(e, out, out.String())
	e.owned = append(e.owned, p)
	return p, nil
}

// RegisterInput creates a named virtual input port, visible to other
// applications on the system MIDI graph.
func (e *Engine) RegisterInput(name string) (*AsyncIn, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	in, err := e.drv.OpenVirtualIn(name)
	if err != nil {
		return nil, errors.Wrapf(err, "register input port %q", name)
	}
	p := newAsyncIn(e, in, name)
	e.owned = append(e.owned, p)
	return p, nil
}

// RegisterOutput creates a named virtual output port.
func (e *Engine) RegisterOutput(name string) (*AsyncOut, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.drv.OpenVirtualOut(name)
	if err != nil {
		return nil, errors.Wrapf(err, "register output port %q", name)
	}
	p := newAsyncOut(e, out, name)
	e.owned = append(e.owned, p)
	return p, nil
}

// Unregister closes a port and removes it from the engine, under the
// process lock.
func (e *Engine) Unregister(p interface{ Close() error }) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, o := range e.owned {
		if o == p {
			e.owned = append(e.owned[:i], e.owned[i+1:]...)
			break
		}
	}
	return p.Close()
}

// Close tears down every registered port and the driver.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.owned {
		if err := p.Close(); err != nil {
			log.WithError(err).Warn("closing port")
		}
	}
	e.owned = nil
	return e.drv.Close()
}

func (e *Engine) findIn(pattern string) (drivers.In, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "bad port pattern %q", pattern)
	}
	ins, err := e.drv.Ins()
	if err != nil {
		return nil, errors.Wrap(err, "list input ports")
	}
	for _, in := range ins {
		if re.MatchString(in.String()) {
			return in, nil
		}
	}
	return nil, errors.Errorf("no input port matches %q", pattern)
}

func (e *Engine) findOut(pattern string) (drivers.Out, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "bad port pattern %q", pattern)
	}
	outs, err := e.drv.Outs()
	if err != nil {
		return nil, errors.Wrap(err, "list output ports")
	}
	for _, out := range outs {
		if re.MatchString(out.String()) {
			return out, nil
		}
	}
	return nil, errors.Errorf("no output port matches %q", pattern)
}
