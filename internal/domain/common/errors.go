package common

import "errors"

// ErrInvalidInput is wrapped by every validation failure so transports can
// answer 400 without knowing which domain produced it.
var ErrInvalidInput = errors.New("invalid input")
