// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/utils"
	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/paksentiment/paksentiment/models"
)

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorResponse(w, status, messagesFromError(err)...)
}

func writeErrorResponse(w http.ResponseWriter, status int, messages ...string) {
	utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: status,
		Message:    messages,
		Error:      http.StatusText(status),
	}, status)
}

// bound converts the value handed out by [app.Router.Bind] into T. A
// transforming pipe yields *T; otherwise the plain payload is decoded with
// string coercion, the way the payload was validated.
func bound[T any](out any) (T, error) {
	var value T

	switch v := out.(type) {
	case *T:
		return *v, nil
	case map[string]any:
		if err := validators.Decode(v, &value, true); err != nil {
			return value, fmt.Errorf("%w: %w", app.ErrMalformedPayload, err)
		}
		return value, nil
	default:
		return value, fmt.Errorf("%w: %T", ErrUnexpectedPayload, out)
	}
}
