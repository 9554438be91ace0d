package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/model"
)

// MemorySource is an in-memory controller.InputSource.
type MemorySource struct {
	mu     sync.Mutex
	values model.Values
	reads  int
	resets int
	err    error
}

var _ controller.InputSource = (*MemorySource)(nil)

// NewMemorySource seeds the source with values.
func NewMemorySource(values model.Values) *MemorySource {
	return &MemorySource{values: values}
}

// Values returns the current values.
func (s *MemorySource) Values(_ context.Context) (model.Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.err != nil {
		return model.Values{}, s.err
	}
	return s.values, nil
}

// Reset clears every value.
func (s *MemorySource) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
	s.values = model.Values{}
	return nil
}

// Set types value into name.
func (s *MemorySource) Set(name model.FieldName, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.values.Set(name, value)
}

// Snapshot returns the values without counting a read.
func (s *MemorySource) Snapshot() model.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Reads reports how many times Values was called.
func (s *MemorySource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Resets reports how many times Reset was called.
func (s *MemorySource) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

// FailReads makes subsequent Values calls return err. A nil err restores
// normal reads.
func (s *MemorySource) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
