// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app provides the application instance: a chi router populated by
// a [Module], a global validation pipe applied to bound payloads, and the
// transport servers started by [Application.Listen].
package app
