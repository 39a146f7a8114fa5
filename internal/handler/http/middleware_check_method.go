// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paksentiment/paksentiment/internal/app"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is known but the method is not. This handler
// answers 404 with the same JSON body as an unknown path instead, so callers
// cannot probe which paths exist. If routes does match the method and path,
// the request is handed to next.
//
//	r.MethodNotAllowed(CheckHTTPMethod(r.Routes(), r))
func CheckHTTPMethod(routes chi.Routes, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if routes.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		cannotRoute(w, r)
	}
}

// cannotRoute writes the 404 body used for unknown paths and methods.
func cannotRoute(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, http.StatusNotFound, fmt.Sprintf(app.MsgCannotRoute, r.Method, r.URL.Path))
}
