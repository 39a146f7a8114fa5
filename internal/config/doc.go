// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the PakSentiment server and scraper.
//
// Configuration is assembled from multiple sources in the following priority
// order (a non-zero value from an earlier source wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging, so an unset PORT resolves to 3000.
// The main entry points are [GetStructuredConfig] for the server and
// [GetScraperConfig] for the scraper.
package config
