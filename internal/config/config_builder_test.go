// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func intPtr(v int) *int { return &v }

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	require.NotNil(t, cfg.Server.Port)
	assert.Equal(t, DefaultPort, *cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.ListenAddress())
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultPostsCapacity, cfg.Storage.Posts.Capacity)
	assert.Equal(t, []string{DefaultScrapeTag}, cfg.Scraper.Tags)
	assert.Equal(t, DefaultScrapeLimit, cfg.Scraper.Limit)
	assert.Equal(t, DefaultSubreddit, cfg.Scraper.Reddit.Subreddit)
	assert.Equal(t, DefaultTwitterBaseURL, cfg.Scraper.Twitter.BaseURL)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: intPtr(8080)}},
		&StructuredConfig{Server: Server{Port: intPtr(9090), Host: "127.0.0.1"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.ListenAddress())
}

func TestBuild_ExplicitZeroPortIsKept(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{Port: intPtr(0)}})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, ":0", cfg.Server.ListenAddress())
}

func TestBuild_InvalidPort(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{Server: Server{Port: intPtr(port)}})

		_, err := b.build()

		assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	}
}

func TestBuild_NegativeCapacity(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Posts: Posts{Capacity: -1}}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── with* ─────────────────────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-p", "x"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"port": 7000, "request_timeout": "3s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.ListenAddress())
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()

	assert.Error(t, err)
}

func TestEnvOverridesJSONPort(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"server": map[string]any{"port": 7000}})
	setEnvVars(t, map[string]string{"PORT": "8088", "CONFIG": path})

	cfg, err := newConfigBuilder().withEnv().withFlags(nil).withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Server.ListenAddress())
}

// ── scraper view ──────────────────────────────────────────────────────────────

func TestNewScraperConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "twitter only",
			mutate: func(cfg *StructuredConfig) { cfg.Scraper.Twitter.BearerToken = "bearer" },
		},
		{
			name: "reddit only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Scraper.Reddit.ClientID = "id"
				cfg.Scraper.Reddit.ClientSecret = "secret"
			},
		},
		{
			name:    "no credentials",
			mutate:  func(cfg *StructuredConfig) {},
			wantErr: ErrInvalidScraperConfigs,
		},
		{
			name: "limit too large",
			mutate: func(cfg *StructuredConfig) {
				cfg.Scraper.Twitter.BearerToken = "bearer"
				cfg.Scraper.Limit = 500
			},
			wantErr: ErrInvalidScraperConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newConfigBuilder().build()
			require.NoError(t, err)
			tt.mutate(cfg)

			scraperCfg, err := newScraperConfig(cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg.Scraper.Tags, scraperCfg.Tags)
		})
	}
}
