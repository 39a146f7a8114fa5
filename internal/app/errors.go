// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrModuleResolution is returned by New when the application module is
	// missing or fails to register its routes.
	ErrModuleResolution = errors.New("application module could not be resolved")

	// ErrMalformedPayload is returned by Bind when the body is not a JSON
	// object.
	ErrMalformedPayload = errors.New("malformed request payload")

	ErrAlreadyListening = errors.New("application is already listening")
	ErrNotListening     = errors.New("application is not listening")
)
