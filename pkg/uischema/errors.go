package uischema

import "errors"

// ErrInvalidDelay is returned when resetDelay is not a non-negative duration.
var ErrInvalidDelay = errors.New("uischema: invalid reset delay")
