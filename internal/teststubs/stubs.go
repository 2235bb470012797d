package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubTask is a test double for a cache warm step.
type StubTask struct {
	Calls  atomic.Int32
	Notify chan struct{}

	mu  sync.Mutex
	err error
}

// Run records the call, closes Notify on the first call and returns the configured error.
func (s *StubTask) Run(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.err
}

// SetErr changes the error returned by later calls.
func (s *StubTask) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
