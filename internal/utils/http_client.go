// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace id between the scraper and the server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("https://api.twitter.com", 10*time.Second, "paksentiment-scraper/1.0")
//	resp, err := client.R().SetContext(ctx).Get("/2/tweets/search/recent")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL. A zero timeout leaves the
// request unbounded and an empty userAgent keeps resty's default. Requests
// whose context carries a trace id send it in the X-Trace-ID header.
func NewHTTPClient(baseURL string, timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
