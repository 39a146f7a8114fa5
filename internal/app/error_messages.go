// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Messages written into response bodies. Keeping them in one place keeps the
// wording consistent across handlers and middleware.
const (
	// MsgInternalServerError replaces the message of any 5xx response.
	MsgInternalServerError = "Internal server error"

	// MsgHealthy is the status reported by GET /health.
	MsgHealthy = "ok"

	// MsgPostNotFound is returned when no buffered post has the requested id.
	MsgPostNotFound = "post not found"

	// MsgPostAlreadyExists is returned when a post with the same source and
	// external id was already ingested.
	MsgPostAlreadyExists = "post already exists"

	// MsgInvalidDataProvided is returned when a payload cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgCannotRoute is the format of the 404 message, e.g. "Cannot GET /x".
	MsgCannotRoute = "Cannot %s %s"
)
