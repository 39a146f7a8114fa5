// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Start binds every listener and serves in the background. It returns
	// once the listeners are bound.
	Start() error

	// RunServer starts the servers if needed and blocks until a stop signal
	// arrives, then shuts them down.
	RunServer()

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()

	// HTTPAddr returns the bound HTTP address, or "" before Start.
	HTTPAddr() string
}
