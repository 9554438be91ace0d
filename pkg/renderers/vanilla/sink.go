package vanilla

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/goliatone/go-formguard/pkg/controller"
	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/render"
)

// Sink presents each state by writing a feedback fragment to a writer, for
// hosts that stream partial HTML updates.
type Sink struct {
	mu       sync.Mutex
	renderer *Renderer
	out      io.Writer
	options  render.RenderOptions
}

var _ controller.PresentationSink = (*Sink)(nil)

// NewSink binds renderer to out.
func NewSink(renderer *Renderer, out io.Writer, options render.RenderOptions) *Sink {
	return &Sink{renderer: renderer, out: out, options: options}
}

// Present renders state and writes it in one call.
func (s *Sink) Present(ctx context.Context, state form.PresentationState) error {
	if s == nil || s.renderer == nil || s.out == nil {
		return fmt.Errorf("vanilla sink: renderer and writer are required")
	}
	payload, err := s.renderer.RenderFeedback(ctx, state, s.options)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.out.Write(payload); err != nil {
		return fmt.Errorf("vanilla sink: write: %w", err)
	}
	return nil
}
