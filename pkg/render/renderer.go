package render

import (
	"context"

	"github.com/goliatone/go-formguard/pkg/form"
	"github.com/goliatone/go-formguard/pkg/model"
)

// Renderer converts the live form (values plus presentation state) into a
// byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, values model.Values, state form.PresentationState, options RenderOptions) ([]byte, error)
}
