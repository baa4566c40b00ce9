package services

import "context"

// Poster schedules a function onto the session's event loop
type Poster interface {
	Post(fn func())
}

// Loop is the cooperative scheduler for one session: a single goroutine
// drains tasks in FIFO order, so task bodies mutate session state without
// locks. Inbound events and debounce-timer callbacks all enter through here,
// which is what makes their interleaving safe.
type Loop struct {
	tasks chan func()
}

// NewLoop creates an event loop with a buffered task queue
func NewLoop() *Loop {
	return &Loop{tasks: make(chan func(), 256)}
}

// Post enqueues fn for execution on the loop goroutine
func (l *Loop) Post(fn func()) {
	l.tasks <- fn
}

// Run drains the loop until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}
