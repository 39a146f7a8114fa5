// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoServices is returned by [Handler.Register] when the handler was
	// built without the services its routes call.
	ErrNoServices = errors.New("http handler has no services")

	// ErrUnexpectedPayload is returned when the bound value is neither the
	// declared struct nor a plain payload.
	ErrUnexpectedPayload = errors.New("unexpected bound payload")
)
