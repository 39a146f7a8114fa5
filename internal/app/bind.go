// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/paksentiment/paksentiment/internal/validators"
)

// Bind implements [Router].
//
// With a global pipe installed the result is whatever the pipe hands out:
// dst itself when the pipe transforms, otherwise the filtered plain payload.
// Without a pipe the body is decoded into dst as is and dst is returned.
func (a *Application) Bind(r *http.Request, dst any) (any, error) {
	payload, err := decodeBody(r.Body)
	if err != nil {
		return nil, err
	}

	return a.bind(r, payload, dst)
}

// BindQuery implements [Router]. A parameter given once binds as a string,
// a repeated one as a list of strings.
func (a *Application) BindQuery(r *http.Request, dst any) (any, error) {
	return a.bind(r, queryPayload(r.URL.Query()), dst)
}

func (a *Application) bind(r *http.Request, payload map[string]any, dst any) (any, error) {
	pipe := a.pipe.Load()
	if pipe == nil {
		if err := validators.Decode(payload, dst, false); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return dst, nil
	}

	return pipe.Transform(r.Context(), payload, dst)
}

// decodeBody reads a JSON object. Numbers stay json.Number so that 4.5 is
// not silently truncated into an integer field. An empty body is an empty
// object.
func decodeBody(body io.Reader) (map[string]any, error) {
	if body == nil || body == http.NoBody {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrMalformedPayload)
	}

	return object, nil
}

func queryPayload(values url.Values) map[string]any {
	payload := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			payload[key] = vals[0]
			continue
		}
		payload[key] = vals
	}
	return payload
}
