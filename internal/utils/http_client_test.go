// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0, "")

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", 0, "")
	client2 := NewHTTPClient("http://localhost", 0, "")

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://example.com", 3*time.Second, "agent/1.0")

	assert.Equal(t, "http://example.com", client.BaseURL)
	assert.Equal(t, "agent/1.0", client.Header.Get("User-Agent"))
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestHTTPClient_PropagatesTraceID(t *testing.T) {
	var gotTraceID, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get(TraceIDHeader)
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, "agent/1.0")

	t.Run("with trace id", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "trace-1")
		resp, err := client.R().SetContext(ctx).Get("/")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode())
		assert.Equal(t, "trace-1", gotTraceID)
		assert.Equal(t, "agent/1.0", gotAgent)
	})

	t.Run("without trace id", func(t *testing.T) {
		_, err := client.R().SetContext(context.Background()).Get("/")

		require.NoError(t, err)
		assert.Empty(t, gotTraceID)
	})
}
