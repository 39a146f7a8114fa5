// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned when the bind target is not a non-nil
	// pointer to a struct.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed matches every [*ValidationError] via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError is a per-request client error carrying one message per
// violated rule.
type ValidationError struct {
	Messages []string
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is reports whether target is [ErrValidationFailed].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
