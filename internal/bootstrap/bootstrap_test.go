// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/server"
	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count"`
}

// counterModule echoes the Go type and value of the bound count.
func counterModule(r app.Router) error {
	r.Handle(app.Route{
		Method:  http.MethodPost,
		Pattern: "/counters",
		Summary: "Create a counter",
		Body:    counterRequest{},
		Status:  http.StatusCreated,
		Handler: func(w http.ResponseWriter, req *http.Request) {
			out, err := r.Bind(req, &counterRequest{})
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			w.WriteHeader(http.StatusCreated)
			switch v := out.(type) {
			case *counterRequest:
				_, _ = fmt.Fprintf(w, "%T %v", v.Count, v.Count)
			case map[string]any:
				_, _ = fmt.Fprintf(w, "%T %v", v["count"], v["count"])
			}
		},
	})
	r.Handle(app.Route{
		Method:  http.MethodGet,
		Pattern: "/counters/{id}",
		Handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	})
	return nil
}

func testConfig() *config.StructuredConfig {
	port := 0
	return &config.StructuredConfig{Server: config.Server{Host: "127.0.0.1", Port: &port}}
}

func start(t *testing.T) string {
	t.Helper()

	instance, err := Bootstrap(app.ModuleFunc(counterModule), testConfig(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(instance.Close)

	return "http://" + instance.Addr()
}

func TestDocumentDescriptor(t *testing.T) {
	d := DocumentDescriptor()

	assert.Equal(t, "PakSentiment Swagger Documentation", d.Title)
	assert.Equal(t, "i dont know yet", d.Description)
	assert.Equal(t, "not yet identified", d.TermsOfService)
	assert.Equal(t, "MIT License", d.License.Name)
	assert.Equal(t, "https://en.wikipedia.org/wiki/MIT_License", d.License.URL)
	assert.Equal(t, []string{"http://localhost:3000"}, d.Servers)
	assert.Equal(t, "1.0.0", d.Version)

	assert.Equal(t, d, DocumentDescriptor())
}

func TestGlobalValidationPolicy(t *testing.T) {
	assert.Equal(t, validators.Policy{Whitelist: true, ForbidNonWhitelisted: true, Transform: true}, GlobalValidationPolicy)
}

func TestBootstrap_ServesDocument(t *testing.T) {
	base := start(t)

	resp, err := http.Get(base + "/api-json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title          string `json:"title"`
			Description    string `json:"description"`
			TermsOfService string `json:"termsOfService"`
			Version        string `json:"version"`
			License        struct {
				Name string `json:"name"`
				URL  string `json:"url"`
			} `json:"license"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.Equal(t, "PakSentiment Swagger Documentation", doc.Info.Title)
	assert.Equal(t, "i dont know yet", doc.Info.Description)
	assert.Equal(t, "not yet identified", doc.Info.TermsOfService)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Equal(t, "MIT License", doc.Info.License.Name)
	assert.Equal(t, "https://en.wikipedia.org/wiki/MIT_License", doc.Info.License.URL)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "http://localhost:3000", doc.Servers[0].URL)

	assert.Len(t, doc.Paths, 2)
	assert.Contains(t, doc.Paths["/counters"], "post")
	assert.Contains(t, doc.Paths["/counters/{id}"], "get")
	assert.NotContains(t, doc.Paths, "/api-json")
}

func TestBootstrap_ServesUI(t *testing.T) {
	base := start(t)

	resp, err := http.Get(base + "/api")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/index.html", resp.Request.URL.Path)
}

func TestBootstrap_GlobalPolicy(t *testing.T) {
	base := start(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "undeclared field is rejected",
			body:       `{"name":"a","count":1,"isAdmin":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "property isAdmin should not exist",
		},
		{
			name:       "string is coerced into the declared integer",
			body:       `{"name":"a","count":"42"}`,
			wantStatus: http.StatusCreated,
			wantBody:   "int 42",
		},
		{
			name:       "missing required field",
			body:       `{"count":1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "name should not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(base+"/counters", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestBootstrap_NilModule(t *testing.T) {
	instance, err := Bootstrap(nil, testConfig(), logger.Nop())

	require.ErrorIs(t, err, app.ErrModuleResolution)
	assert.Nil(t, instance)
}

func TestBootstrap_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testConfig()
	port := busy.Addr().(*net.TCPAddr).Port
	cfg.Server.Port = &port

	instance, err := Bootstrap(app.ModuleFunc(counterModule), cfg, logger.Nop())

	require.ErrorIs(t, err, server.ErrListen)
	assert.Nil(t, instance)
}
