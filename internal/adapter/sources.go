// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
)

// NewSources builds a [Source] for every network whose credentials are set
// in cfg.
func NewSources(cfg config.Scraper, logger *logger.Logger) []Source {
	var sources []Source

	if cfg.Twitter.Enabled() {
		sources = append(sources, NewTwitterSource(cfg.Twitter, cfg.RequestTimeout, cfg.RequestsPerMinute, logger))
	}
	if cfg.Reddit.Enabled() {
		sources = append(sources, NewRedditSource(cfg.Reddit, cfg.RequestTimeout, cfg.RequestsPerMinute, logger))
	}

	logger.Info().Int("sources", len(sources)).Msg("scraper sources created")
	return sources
}
