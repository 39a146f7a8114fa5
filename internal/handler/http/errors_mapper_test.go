// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/internal/service"
	"github.com/paksentiment/paksentiment/internal/store"
	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &validators.ValidationError{Messages: []string{"x"}}, http.StatusBadRequest},
		{"malformed payload", fmt.Errorf("%w: eof", app.ErrMalformedPayload), http.StatusBadRequest},
		{"invalid data", fmt.Errorf("wrap: %w", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"duplicate", fmt.Errorf("wrap: %w", store.ErrPostAlreadyExists), http.StatusConflict},
		{"not found", fmt.Errorf("wrap: %w", store.ErrPostNotFound), http.StatusNotFound},
		{"unsupported bind target", validators.ErrUnsupportedType, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessagesFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "validation messages are exposed one by one",
			err:  fmt.Errorf("wrap: %w", &validators.ValidationError{Messages: []string{"source is required", "property x should not exist"}}),
			want: []string{"source is required", "property x should not exist"},
		},
		{
			name: "known sentinel uses its message",
			err:  fmt.Errorf("error getting post: %w", store.ErrPostNotFound),
			want: []string{app.MsgPostNotFound},
		},
		{
			name: "server errors are hidden",
			err:  errors.New("connection refused to 10.0.0.1"),
			want: []string{app.MsgInternalServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messagesFromError(tt.err))
		})
	}
}
