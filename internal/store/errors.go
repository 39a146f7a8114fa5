// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPostNotFound is returned when no buffered post has the requested id,
	// including posts that were evicted.
	ErrPostNotFound = errors.New("post was not found")

	// ErrPostAlreadyExists is returned when a post from the same source with
	// the same external id is already buffered.
	ErrPostAlreadyExists = errors.New("post already exists")

	// ErrInvalidCapacity is returned when the buffer is configured with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("post storage capacity must be positive")
)
