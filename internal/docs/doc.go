// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docs renders the OpenAPI document of an application from its
// registered routes and serves it next to a Swagger UI.
package docs
