// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 0..65535 or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid post buffer settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidScraperConfigs indicates invalid scraper settings
	// (for example, no source credentials or an out-of-range limit).
	ErrInvalidScraperConfigs = errors.New("invalid scraper configuration")
)
