// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const maxPort = 65535

// validate checks the merged [StructuredConfig] before it is used at startup.
// Scraper settings are checked separately by [ScraperConfig.validate] because
// the server does not need them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port != nil && (*cfg.Server.Port < 0 || *cfg.Server.Port > maxPort) {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, *cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Posts.Capacity < 0 {
		return fmt.Errorf("%w: negative posts capacity", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ScraperConfig) validate() error {
	if !cfg.Twitter.Enabled() && !cfg.Reddit.Enabled() {
		return fmt.Errorf("%w: neither twitter nor reddit credentials are set", ErrInvalidScraperConfigs)
	}

	if cfg.Limit < 1 || cfg.Limit > 100 {
		return fmt.Errorf("%w: limit %d is outside 1..100", ErrInvalidScraperConfigs, cfg.Limit)
	}

	if cfg.Interval < 0 || cfg.RequestsPerMinute < 1 {
		return fmt.Errorf("%w: interval and request rate must be positive", ErrInvalidScraperConfigs)
	}

	return nil
}
