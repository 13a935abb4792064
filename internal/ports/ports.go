// Package ports provides the MIDI port collaborators the surface
// driver consumes: an engine that registers and discovers ports under
// a process-wide lock, and async port wrappers with buffered output,
// drain, and connect-by-name operations. The concrete backing is
// gitlab.com/gomidi/midi/v2 with the rtmidi driver.
package ports

import "time"

// Flag describes a port for discovery queries.
type Flag uint8

const (
	IsInput Flag = 1 << iota
	IsOutput
	IsPhysical
)

// Output accepts raw MIDI bytes for immediate transmission.
type Output interface {
	Name() string
	Write(data []byte) error
	Close() error
}

// Input delivers parsed inbound MIDI messages to a handler.
type Input interface {
	Name() string
	SetHandler(fn func(data []byte)) error
	Close() error
}

// Drainer is the capability of a buffered async output: wait until
// in-flight data has gone to the wire, bounded by a timeout. Reports
// whether the port drained fully.
type Drainer interface {
	Drain(timeout, poll time.Duration) bool
}

// Connector is the capability of a registered port that can be
// patched to a hardware port found by name pattern.
type Connector interface {
	Connect(pattern string) error
	Connected() bool
}
