package ports

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

const outQueueDepth = 1024

// AsyncOut is a buffered asynchronous output port. Writes enqueue in
// order and a single flusher goroutine delivers them to the wire, one
// wire write per call, no coalescing. Drain waits for the queue to
// empty.
type AsyncOut struct {
	engine *Engine
	name   string

	out     drivers.Out
	sendTo  atomic.Pointer[drivers.Out]
	pending atomic.Int64

	queue chan []byte
	once  sync.Once
	done  chan struct{}

	connected atomic.Bool
}

func newAsyncOut(e *Engine, out drivers.Out, name string) *AsyncOut {
	p := &AsyncOut{
		engine: e,
		name:   name,
		out:    out,
		queue:  make(chan []byte, outQueueDepth),
		done:   make(chan struct{}),
	}
	p.sendTo.Store(&out)
	go p.flusher()
	return p
}

func (p *AsyncOut) Name() string { return p.name }

// Write queues data for transmission. Every call produces exactly one
// wire write, in call order.
func (p *AsyncOut) Write(data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	p.pending.Add(1)
	select {
	case p.queue <- buf:
		return nil
	case <-p.done:
		p.pending.Add(-1)
		return errors.New("port closed")
	}
}

func (p *AsyncOut) flusher() {
	for {
		select {
		case <-p.done:
			return
		case data := <-p.queue:
			dst := *p.sendTo.Load()
			if err := dst.Send(data); err != nil {
				log.WithError(err).WithField("port", p.name).Warn("midi send failed")
			}
			p.pending.Add(-1)
		}
	}
}

// Drain polls until all queued data has been written or the timeout
// elapses. Best effort: callers proceed to teardown either way.
func (p *AsyncOut) Drain(timeout, poll time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for p.pending.Load() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(poll)
	}
	return true
}

// Connect patches the port's delivery to the first hardware output
// matching the pattern. Idempotent: a connected port stays as it is.
func (p *AsyncOut) Connect(pattern string) error {
	if p.connected.Load() {
		return nil
	}
	hw, err := p.engine.findOut(pattern)
	if err != nil {
		return err
	}
	if err := hw.Open(); err != nil {
		return errors.Wrapf(err, "open output %q", hw.String())
	}
	p.sendTo.Store(&hw)
	p.connected.Store(true)
	log.WithFields(log.Fields{"port": p.name, "to": hw.String()}).Info("output port connected")
	return nil
}

func (p *AsyncOut) Connected() bool { return p.connected.Load() }

// Close stops the flusher and closes the underlying port. Queued but
// unflushed data is discarded; callers drain first if they care.
func (p *AsyncOut) Close() error {
	var err error
	p.once.Do(func() {
		close(p.done)
		err = p.out.Close()
	})
	return err
}

// AsyncIn is an input port delivering parsed MIDI messages, SysEx
// included, to a single handler.
type AsyncIn struct {
	engine *Engine
	name   string

	in drivers.In

	mu      sync.Mutex
	handler func(data []byte)
	stops   []func()

	connected atomic.Bool
}

func newAsyncIn(e *Engine, in drivers.In, name string) *AsyncIn {
	return &AsyncIn{engine: e, name: name, in: in}
}

func (p *AsyncIn) Name() string { return p.name }

// SetHandler attaches the receive handler and starts listening.
func (p *AsyncIn) SetHandler(fn func(data []byte)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.handler = fn
	return p.listen(p.in)
}

func (p *AsyncIn) listen(in drivers.In) error {
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		p.mu.Lock()
		fn := p.handler
		p.mu.Unlock()
		if fn != nil {
			fn(msg)
		}
	}, midi.UseSysEx())
	if err != nil {
		return errors.Wrapf(err, "listen on %q", in.String())
	}
	p.stops = append(p.stops, stop)
	return nil
}

// Connect additionally feeds the handler from the first hardware
// input matching the pattern. Idempotent.
func (p *AsyncIn) Connect(pattern string) error {
	if p.connected.Load() {
		return nil
	}
	hw, err := p.engine.findIn(pattern)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.listen(hw); err != nil {
		return err
	}
	p.connected.Store(true)
	log.WithFields(log.Fields{"port": p.name, "from": hw.String()}).Info("input port connected")
	return nil
}

func (p *AsyncIn) Connected() bool { return p.connected.Load() }

// Close stops all listeners and closes the underlying port.
func (p *AsyncIn) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, stop := range p.stops {
		stop()
	}
	p.stops = nil
	p.handler = nil
	return p.in.Close()
}
