// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ScraperConfig is the view of [StructuredConfig] used by cmd/scraper.
type ScraperConfig struct {
	Scraper

	// LogLevel mirrors App.LogLevel.
	LogLevel string
}

// GetScraperConfig builds and validates a scraper-specific config view from
// the merged structured configuration.
func GetScraperConfig() (*ScraperConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newScraperConfig(cfg)
}

func newScraperConfig(cfg *StructuredConfig) (*ScraperConfig, error) {
	scraperCfg := &ScraperConfig{
		Scraper:  cfg.Scraper,
		LogLevel: cfg.App.LogLevel,
	}

	if err := scraperCfg.validate(); err != nil {
		return nil, err
	}

	return scraperCfg, nil
}
