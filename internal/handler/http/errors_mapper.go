// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/internal/service"
	"github.com/paksentiment/paksentiment/internal/store"
	"github.com/paksentiment/paksentiment/internal/validators"
)

type errorMapping struct {
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []struct {
	target error
	errorMapping
}{
	{validators.ErrValidationFailed, errorMapping{http.StatusBadRequest, ""}},
	{validators.ErrUnsupportedType, errorMapping{http.StatusInternalServerError, ""}},
	{app.ErrMalformedPayload, errorMapping{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrUnexpectedPayload, errorMapping{http.StatusInternalServerError, ""}},
	{service.ErrInvalidDataProvided, errorMapping{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrPostAlreadyExists, errorMapping{http.StatusConflict, app.MsgPostAlreadyExists}},
	{store.ErrPostNotFound, errorMapping{http.StatusNotFound, app.MsgPostNotFound}},
}

func statusFromError(err error) int {
	return mapError(err).status
}

// messagesFromError returns the client-facing messages for err. Validation
// errors expose one message per violated rule; 5xx errors never leak their
// cause.
func messagesFromError(err error) []string {
	mapping := mapError(err)
	if mapping.status >= http.StatusInternalServerError {
		return []string{app.MsgInternalServerError}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Messages) > 0 {
		return validationErr.Messages
	}

	if mapping.message != "" {
		return []string{mapping.message}
	}
	return []string{err.Error()}
}

func mapError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.errorMapping
		}
	}
	return errorMapping{status: http.StatusInternalServerError}
}
