// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Defaults applied by the config builder after all sources are merged.
const (
	DefaultPort              = 3000
	DefaultRequestTimeout    = 15 * time.Second
	DefaultPostsCapacity     = 1000
	DefaultScrapeTag         = "pakistan"
	DefaultScrapeLimit       = 10
	DefaultSubreddit         = "pakistan"
	DefaultRequestsPerMinute = 30
	DefaultTwitterBaseURL    = "https://api.twitter.com"
	DefaultRedditAuthURL     = "https://www.reddit.com"
	DefaultRedditAPIURL      = "https://oauth.reddit.com"
	DefaultRedditUserAgent   = "paksentiment-scraper/1.0"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds listener settings. It has no prefix so that the port is
	// read from the conventional PORT variable.
	Server Server

	// Storage holds the in-memory post buffer settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Scraper holds settings of the social media scraper.
	Scraper Scraper `envPrefix:"PAKSENTIMENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App contains application-level settings.
type App struct {
	// Version is reported by GET /version.
	Version string `env:"VERSION"`

	// LogLevel narrows the logger ("debug", "info", "warn", "error").
	LogLevel string `env:"LOG_LEVEL"`
}

// Server contains network settings of the HTTP and gRPC listeners.
type Server struct {
	// Port is the HTTP port. A nil Port means "not configured" and resolves
	// to DefaultPort; an explicit 0 asks the kernel for a free port.
	Port *int `env:"PORT"`

	// Host is the HTTP bind host. Empty binds all interfaces.
	Host string `env:"SERVER_HOST"`

	// GRPCAddress is the gRPC health listener address; empty disables it.
	GRPCAddress string `env:"SERVER_GRPC_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// ListenAddress returns the host:port the HTTP server binds to.
func (s Server) ListenAddress() string {
	port := DefaultPort
	if s.Port != nil {
		port = *s.Port
	}

	return net.JoinHostPort(s.Host, strconv.Itoa(port))
}

// Storage groups the in-memory storage settings.
type Storage struct {
	Posts Posts `envPrefix:"POSTS_"`
}

// Posts configures the bounded post buffer.
type Posts struct {
	// Capacity is the maximum number of posts kept; the least recently used
	// post is evicted first.
	Capacity int `env:"CAPACITY"`
}

// Scraper configures cmd/scraper.
type Scraper struct {
	// Tags are the search terms passed to every source.
	Tags []string `env:"TAGS" envSeparator:","`

	// Limit is the number of posts requested per source and tag.
	Limit int `env:"LIMIT"`

	// Interval between scrape rounds. Zero runs a single round.
	Interval time.Duration `env:"INTERVAL"`

	// ServerAddress is the PakSentiment server the posts are uploaded to.
	// Empty only logs the fetched posts.
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerMinute caps the request rate of each source.
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE"`

	Twitter Twitter `envPrefix:"TWITTER_"`
	Reddit  Reddit  `envPrefix:"REDDIT_"`
}

// Twitter holds the recent search API credentials.
type Twitter struct {
	BearerToken string `env:"BEARER_TOKEN"`
	BaseURL     string `env:"BASE_URL"`
}

// Enabled reports whether Twitter credentials are configured.
func (t Twitter) Enabled() bool {
	return t.BearerToken != ""
}

// Reddit holds the script-app OAuth credentials.
type Reddit struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	UserAgent    string `env:"USER_AGENT"`
	Subreddit    string `env:"SUBREDDIT"`
	AuthURL      string `env:"AUTH_URL"`
	APIURL       string `env:"API_URL"`
}

// Enabled reports whether Reddit credentials are configured.
func (r Reddit) Enabled() bool {
	return r.ClientID != "" && r.ClientSecret != ""
}

// GetStructuredConfig loads the server configuration from the environment,
// the process flags and the optional JSON file, applies defaults and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
