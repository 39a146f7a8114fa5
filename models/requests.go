// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultListLimit is used when ListPostsQuery.Limit is not given.
const DefaultListLimit = 20

// CreatePostRequest is the body of POST /posts. Only the fields declared here
// are accepted; the global validation policy strips or rejects anything else.
type CreatePostRequest struct {
	Source      string    `json:"source" validate:"required,oneof=twitter reddit"`
	ExternalID  string    `json:"external_id" validate:"required,max=64"`
	Author      string    `json:"author,omitempty" validate:"omitempty,max=128"`
	Title       string    `json:"title,omitempty" validate:"omitempty,max=300"`
	Text        string    `json:"text,omitempty" validate:"required_without=Title,max=40000"`
	Tag         string    `json:"tag,omitempty" validate:"omitempty,max=64"`
	Score       int       `json:"score,omitempty"`
	URL         string    `json:"url,omitempty" validate:"omitempty,url"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// ListPostsQuery holds the query parameters of GET /posts.
type ListPostsQuery struct {
	Source string `json:"source,omitempty" validate:"omitempty,oneof=twitter reddit"`
	Tag    string `json:"tag,omitempty" validate:"omitempty,max=64"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// EffectiveLimit returns Limit, or DefaultListLimit when it is unset.
func (q ListPostsQuery) EffectiveLimit() int {
	if q.Limit == 0 {
		return DefaultListLimit
	}
	return q.Limit
}
