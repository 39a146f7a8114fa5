// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-yaml"
	"github.com/paksentiment/paksentiment/internal/app"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Mounter registers routes; [app.Application] implements it.
type Mounter interface {
	Handle(route app.Route)
}

// Setup serves doc under path (e.g. "api"):
//
//	GET /api       redirect to the UI
//	GET /api/*     Swagger UI
//	GET /api-json  the document as JSON
//	GET /api-yaml  the document as YAML
//
// The routes are hidden, so they never appear in a document rendered later.
func Setup(path string, m Mounter, doc *openapi3.T) error {
	base := "/" + strings.Trim(path, "/")

	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshalling API document to JSON: %w", err)
	}

	yamlDoc, err := yaml.JSONToYAML(jsonDoc)
	if err != nil {
		return fmt.Errorf("error converting API document to YAML: %w", err)
	}

	m.Handle(app.Route{
		Method:  http.MethodGet,
		Pattern: base,
		Hidden:  true,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base+"/index.html", http.StatusMovedPermanently)
		},
	})
	m.Handle(app.Route{
		Method:  http.MethodGet,
		Pattern: base + "/*",
		Hidden:  true,
		Handler: httpSwagger.Handler(httpSwagger.URL(base + "-json")),
	})
	m.Handle(app.Route{
		Method:  http.MethodGet,
		Pattern: base + "-json",
		Hidden:  true,
		Handler: serveDocument("application/json", jsonDoc),
	})
	m.Handle(app.Route{
		Method:  http.MethodGet,
		Pattern: base + "-yaml",
		Hidden:  true,
		Handler: serveDocument("application/x-yaml", yamlDoc),
	})

	return nil
}

func serveDocument(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}
}
