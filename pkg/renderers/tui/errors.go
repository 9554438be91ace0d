package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or picked
	// Cancel from the action menu.
	ErrAborted = errors.New("tui: aborted")
	// ErrNoDriver is returned when a session runs without a prompt driver.
	ErrNoDriver = errors.New("tui: prompt driver is nil")
)
