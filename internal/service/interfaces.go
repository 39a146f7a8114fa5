// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/post_service_mock.go -package=mock -copyright_file=../../hack/boilerplate.go.txt

import (
	"context"

	"github.com/paksentiment/paksentiment/models"
)

// PostService ingests scraped posts and serves them back.
type PostService interface {
	// Ingest stores req as a new post and returns it with the server-assigned
	// id and ingestion time.
	Ingest(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// List returns buffered posts matching query, newest first.
	List(ctx context.Context, query models.ListPostsQuery) ([]models.Post, error)

	// Get returns a single post by server id.
	Get(ctx context.Context, id string) (models.Post, error)
}

// AppInfoService reports information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// logging or validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// IDGenerator produces server-side post identifiers.
type IDGenerator interface {
	Generate() string
}
