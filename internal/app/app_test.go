// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/server"
	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count,omitempty"`
}

func pingModule(r Router) error {
	r.Handle(Route{
		Method:  http.MethodGet,
		Pattern: "/ping",
		Summary: "Ping",
		Handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("pong"))
		},
	})
	return nil
}

func localConfig() config.Server {
	port := 0
	return config.Server{Host: "127.0.0.1", Port: &port}
}

func TestNew_NilModule(t *testing.T) {
	a, err := New(nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, ErrModuleResolution)
	assert.Nil(t, a)
}

func TestNew_RegisterFails(t *testing.T) {
	boom := errors.New("boom")

	a, err := New(ModuleFunc(func(Router) error { return boom }), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, ErrModuleResolution)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, a)
}

func TestNew_RegisterPanics(t *testing.T) {
	a, err := New(ModuleFunc(func(r Router) error {
		r.Handle(Route{Method: http.MethodGet, Pattern: "/x", Handler: func(http.ResponseWriter, *http.Request) {}})
		// middlewares after routes make chi panic
		r.Use(func(next http.Handler) http.Handler { return next })
		return nil
	}), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, ErrModuleResolution)
	assert.Nil(t, a)
}

func TestApplication_RoutesAndMetadata(t *testing.T) {
	a, err := New(ModuleFunc(pingModule), config.Server{}, logger.Nop())
	require.NoError(t, err)

	route, ok := a.Route(http.MethodGet, "/ping")
	require.True(t, ok)
	assert.Equal(t, "Ping", route.Summary)
	assert.Equal(t, http.StatusOK, route.SuccessStatus())

	_, ok = a.Route(http.MethodPost, "/ping")
	assert.False(t, ok)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", rec.Body.String())
}

func TestApplication_UseGlobalPipes(t *testing.T) {
	a, err := New(ModuleFunc(pingModule), config.Server{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, a.GlobalPipe())

	pipe := validators.NewValidationPipe(validators.Policy{Whitelist: true})
	a.UseGlobalPipes(pipe)

	assert.Same(t, pipe, a.GlobalPipe())
}

func TestApplication_Bind(t *testing.T) {
	strict := validators.Policy{Whitelist: true, ForbidNonWhitelisted: true, Transform: true}

	tests := []struct {
		name    string
		policy  *validators.Policy
		body    string
		wantErr error
		check   func(t *testing.T, out any, dst *itemRequest)
	}{
		{
			name:   "transform hands out the typed value",
			policy: &strict,
			body:   `{"name":"a","count":"42"}`,
			check: func(t *testing.T, out any, dst *itemRequest) {
				assert.Same(t, dst, out)
				assert.Equal(t, 42, dst.Count)
			},
		},
		{
			name:   "without transform the plain payload is handed out",
			policy: &validators.Policy{Whitelist: true},
			body:   `{"name":"a","count":"42","extra":true}`,
			check: func(t *testing.T, out any, dst *itemRequest) {
				assert.Equal(t, map[string]any{"name": "a", "count": "42"}, out)
				assert.Zero(t, *dst)
			},
		},
		{
			name:    "undeclared field is rejected",
			policy:  &strict,
			body:    `{"name":"a","extra":true}`,
			wantErr: validators.ErrValidationFailed,
		},
		{
			name:    "fraction into integer is rejected",
			policy:  &strict,
			body:    `{"name":"a","count":4.5}`,
			wantErr: validators.ErrValidationFailed,
		},
		{
			name:    "empty body fails required fields",
			policy:  &strict,
			body:    ``,
			wantErr: validators.ErrValidationFailed,
		},
		{
			name:    "invalid json",
			policy:  &strict,
			body:    `{"name":`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "array body",
			policy:  &strict,
			body:    `[1,2]`,
			wantErr: ErrMalformedPayload,
		},
		{
			name: "no pipe decodes strictly",
			body: `{"name":"a","count":7}`,
			check: func(t *testing.T, out any, dst *itemRequest) {
				assert.Same(t, dst, out)
				assert.Equal(t, itemRequest{Name: "a", Count: 7}, *dst)
			},
		},
		{
			name:    "no pipe rejects mismatched types",
			body:    `{"name":"a","count":"7"}`,
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(ModuleFunc(pingModule), config.Server{}, logger.Nop())
			require.NoError(t, err)
			if tt.policy != nil {
				a.UseGlobalPipes(validators.NewValidationPipe(*tt.policy))
			}

			var dst itemRequest
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			out, err := a.Bind(req, &dst)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, out, &dst)
		})
	}
}

func TestApplication_BindQuery(t *testing.T) {
	type query struct {
		Tag   string   `json:"tag"`
		Limit int      `json:"limit"`
		Langs []string `json:"lang"`
	}

	a, err := New(ModuleFunc(pingModule), config.Server{}, logger.Nop())
	require.NoError(t, err)
	a.UseGlobalPipes(validators.NewValidationPipe(validators.Policy{Whitelist: true, Transform: true}))

	var q query
	req := httptest.NewRequest(http.MethodGet, "/items?tag=pakistan&limit=5&lang=en&lang=ur&junk=1", nil)
	out, err := a.BindQuery(req, &q)

	require.NoError(t, err)
	assert.Same(t, &q, out)
	assert.Equal(t, query{Tag: "pakistan", Limit: 5, Langs: []string{"en", "ur"}}, q)
}

func TestApplication_ListenAndClose(t *testing.T) {
	a, err := New(ModuleFunc(pingModule), localConfig(), logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, a.Addr())
	assert.ErrorIs(t, a.Run(), ErrNotListening)

	require.NoError(t, a.Listen())
	t.Cleanup(a.Close)
	assert.ErrorIs(t, a.Listen(), ErrAlreadyListening)

	resp, err := http.Get("http://" + a.Addr() + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestApplication_ListenPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	port := busy.Addr().(*net.TCPAddr).Port
	a, err := New(ModuleFunc(pingModule), config.Server{Host: "127.0.0.1", Port: &port}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, a.Listen(), server.ErrListen)
	assert.Empty(t, a.Addr())
}
