// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the PakSentiment server.
//
// [Handler] is the application module: it registers the post, health and
// version routes together with their documentation metadata, and installs
// the middleware chain (panic recovery, request tracing, access logging and
// response compression) in front of them. Payloads are bound through the
// application's global validation pipe before reaching the service layer.
package http
