// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		Port           *int     `json:"port"`
		Host           string   `json:"host"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		Posts struct {
			Capacity int `json:"capacity"`
		} `json:"posts,omitempty"`
	} `json:"storage,omitempty"`

	Scraper struct {
		Tags              []string `json:"tags"`
		Limit             int      `json:"limit"`
		Interval          Duration `json:"interval"`
		ServerAddress     string   `json:"server_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerMinute int      `json:"requests_per_minute"`

		Twitter struct {
			BearerToken string `json:"bearer_token"`
			BaseURL     string `json:"base_url"`
		} `json:"twitter,omitempty"`

		Reddit struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			UserAgent    string `json:"user_agent"`
			Subreddit    string `json:"subreddit"`
			AuthURL      string `json:"auth_url"`
			APIURL       string `json:"api_url"`
		} `json:"reddit,omitempty"`
	} `json:"scraper,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s := jsonCfg.Scraper
	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			Port:           jsonCfg.Server.Port,
			Host:           jsonCfg.Server.Host,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			Posts: Posts{Capacity: jsonCfg.Storage.Posts.Capacity},
		},
		Scraper: Scraper{
			Tags:              s.Tags,
			Limit:             s.Limit,
			Interval:          time.Duration(s.Interval),
			ServerAddress:     s.ServerAddress,
			RequestTimeout:    time.Duration(s.RequestTimeout),
			RequestsPerMinute: s.RequestsPerMinute,
			Twitter: Twitter{
				BearerToken: s.Twitter.BearerToken,
				BaseURL:     s.Twitter.BaseURL,
			},
			Reddit: Reddit{
				ClientID:     s.Reddit.ClientID,
				ClientSecret: s.Reddit.ClientSecret,
				UserAgent:    s.Reddit.UserAgent,
				Subreddit:    s.Reddit.Subreddit,
				AuthURL:      s.Reddit.AuthURL,
				APIURL:       s.Reddit.APIURL,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
