package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
)

// RecordingSink keeps every presented state.
type RecordingSink struct {
	mu     sync.Mutex
	states []form.PresentationState
}

var _ controller.PresentationSink = (*RecordingSink)(nil)

// Present records state.
func (s *RecordingSink) Present(_ context.Context, state form.PresentationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state.Clone())
	return nil
}

// Last returns the most recent state, or a cleared state when nothing was
// presented yet.
func (s *RecordingSink) Last() form.PresentationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.states) == 0 {
		return form.Cleared()
	}
	return s.states[len(s.states)-1].Clone()
}

// Count reports how many states were presented.
func (s *RecordingSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
