// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == nil {
		port := DefaultPort
		cfg.Server.Port = &port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.Posts.Capacity == 0 {
		cfg.Storage.Posts.Capacity = DefaultPostsCapacity
	}

	s := &cfg.Scraper
	if len(s.Tags) == 0 {
		s.Tags = []string{DefaultScrapeTag}
	}
	if s.Limit == 0 {
		s.Limit = DefaultScrapeLimit
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = DefaultRequestTimeout
	}
	if s.RequestsPerMinute == 0 {
		s.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if s.Twitter.BaseURL == "" {
		s.Twitter.BaseURL = DefaultTwitterBaseURL
	}
	if s.Reddit.Subreddit == "" {
		s.Reddit.Subreddit = DefaultSubreddit
	}
	if s.Reddit.UserAgent == "" {
		s.Reddit.UserAgent = DefaultRedditUserAgent
	}
	if s.Reddit.AuthURL == "" {
		s.Reddit.AuthURL = DefaultRedditAuthURL
	}
	if s.Reddit.APIURL == "" {
		s.Reddit.APIURL = DefaultRedditAPIURL
	}
}
