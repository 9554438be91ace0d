package controller

import "errors"

var (
	// ErrNilSource is returned when New receives no input source.
	ErrNilSource = errors.New("controller: input source is required")
	// ErrNilSink is returned when New receives no presentation sink.
	ErrNilSink = errors.New("controller: presentation sink is required")
)
