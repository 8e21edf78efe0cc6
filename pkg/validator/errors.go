// Copyright 2025 Certen Protocol

package validator

import "errors"

// ErrValidationFailed wraps any failure from the validation pipeline so
// callers can distinguish "proof data rejected" from transport/config
// errors with a single errors.Is check, alongside the wrapped cause.
var ErrValidationFailed = errors.New("validator: proof data validation failed")
