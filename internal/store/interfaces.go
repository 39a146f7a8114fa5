// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps ingested posts in a bounded in-memory buffer.
//
// Contents live only as long as the process; there is no persistence.
package store

import (
	"context"

	"github.com/paksentiment/paksentiment/models"
)

// PostStorage is the post buffer used by the service layer.
type PostStorage interface {
	// Save stores post. A post with the same source and external id already
	// in the buffer yields [ErrPostAlreadyExists].
	Save(ctx context.Context, post models.Post) error

	// Get returns the post with the given server id, or [ErrPostNotFound].
	Get(ctx context.Context, id string) (models.Post, error)

	// List returns posts matching query, most recently ingested first.
	List(ctx context.Context, query models.ListPostsQuery) ([]models.Post, error)

	// Len reports the number of buffered posts.
	Len() int
}
