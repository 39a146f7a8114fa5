// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen wraps every failure to bind a listener (address in use,
	// missing permission, malformed address).
	ErrListen = errors.New("error binding listener")

	errNoServersAreCreated = errors.New("no servers are created")
)
