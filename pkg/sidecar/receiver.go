package sidecar

import (
	"sync"
	"sync/atomic"
)

// EventKind identifies what a sidecar Event carries.
type EventKind int

const (
	// Stdout carries one line written to the child's standard output.
	Stdout EventKind = iota
	// Stderr carries one line written to the child's standard error.
	Stderr
	// Error reports a failure reading one of the child's streams.
	Error
	// Terminated is the last event; it carries the exit status.
	Terminated
)

func (k EventKind) String() string {
	switch k {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	case Error:
		return "error"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// ExitStatus describes how the child ended.
type ExitStatus struct {
	// Code is the exit code, or -1 when the child was killed by a signal.
	Code int
	// Signal names the terminating signal, if any.
	Signal string
}

// Event is one observation of a running sidecar.
type Event struct {
	Kind EventKind
	Line string
	Err  error
	Exit ExitStatus
}

// DefaultBufferSize is the number of events a Receiver holds before it
// starts dropping.
const DefaultBufferSize = 256

// Receiver delivers a child's output events. Sends never block: once the
// buffer is full further events are dropped and counted, so a receiver that
// nobody reads cannot stall the child or the shell.
type Receiver struct {
	events  chan Event
	dropped atomic.Uint64

	closeOnce sync.Once
}

func newReceiver(size int) *Receiver {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Receiver{events: make(chan Event, size)}
}

// Events returns the event channel. It is closed after the Terminated event.
func (r *Receiver) Events() <-chan Event {
	return r.events
}

// Dropped returns how many events were discarded because the buffer was full.
func (r *Receiver) Dropped() uint64 {
	return r.dropped.Load()
}

func (r *Receiver) send(ev Event) {
	select {
	case r.events <- ev:
	default:
		r.dropped.Add(1)
	}
}

// finish delivers the Terminated event, evicting the oldest buffered event
// if needed so readers always see it, then closes the channel.
func (r *Receiver) finish(status ExitStatus) {
	r.closeOnce.Do(func() {
		ev := Event{Kind: Terminated, Exit: status}
		for {
			select {
			case r.events <- ev:
				close(r.events)
				return
			default:
			}
			select {
			case <-r.events:
				r.dropped.Add(1)
			default:
			}
		}
	})
}
