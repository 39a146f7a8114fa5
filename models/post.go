// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Source identifies the social network a post was scraped from.
type Source string

const (
	// SourceTwitter marks posts returned by the Twitter recent search API.
	SourceTwitter Source = "twitter"

	// SourceReddit marks posts returned by a subreddit listing.
	SourceReddit Source = "reddit"
)

// Post is a scraped social media post accepted by the server.
type Post struct {
	// ID is the server-assigned identifier (UUID).
	ID string `json:"id"`

	Source     Source `json:"source"`
	ExternalID string `json:"external_id"`
	Author     string `json:"author,omitempty"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
	Tag        string `json:"tag,omitempty"`
	Score      int    `json:"score"`
	URL        string `json:"url,omitempty"`

	// PublishedAt is the creation time reported by the source.
	PublishedAt time.Time `json:"published_at"`

	// IngestedAt is the time the server accepted the post.
	IngestedAt time.Time `json:"ingested_at"`
}

// DedupKey identifies a post across ingestions: a source never reuses an
// external id.
func (p Post) DedupKey() string {
	return string(p.Source) + ":" + p.ExternalID
}
