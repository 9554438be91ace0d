package tui

import (
	"context"
	"sync"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
)

// State holds the values typed during a session and the last state shown to
// the user. It is the controller's input source; the renderer reads it when
// deciding what changed.
type State struct {
	mu        sync.Mutex
	values    model.Values
	presented form.PresentationState
}

var _ controller.InputSource = (*State)(nil)

// NewState seeds the state with prefilled values.
func NewState(prefill model.Values) *State {
	return &State{values: prefill, presented: form.Cleared()}
}

// Values implements controller.InputSource.
func (s *State) Values(context.Context) (model.Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values, nil
}

// Reset implements controller.InputSource.
func (s *State) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = model.Values{}
	return nil
}

// Set stores one field value.
func (s *State) Set(name model.FieldName, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Set(name, value)
}

// Value returns one field value.
func (s *State) Value(name model.FieldName) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Get(name)
}

func (s *State) empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Empty()
}

// swap records next as presented and returns what was shown before.
func (s *State) swap(next form.PresentationState) form.PresentationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.presented
	s.presented = next.Clone()
	return previous
}
