package render

import "errors"

var (
	// ErrRendererNotFound is returned when a lookup names no registered renderer.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when two renderers share a name.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)
