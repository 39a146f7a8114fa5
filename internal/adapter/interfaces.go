// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the PakSentiment
// scraper.
//
// A [Source] fetches posts from a social network (Twitter recent search,
// a subreddit listing) and converts them into upload requests. A
// [ServerAdapter] delivers those requests to the PakSentiment server.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrRateLimited]
// for 429).
package adapter

import (
	"context"

	"github.com/paksentiment/paksentiment/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock -copyright_file=../../hack/boilerplate.go.txt

// Source fetches recent posts about a tag from one social network.
type Source interface {
	// Name identifies the source in logs ("twitter", "reddit").
	Name() string

	// Fetch returns at most limit posts about tag, ready to be uploaded.
	// An empty result is not an error.
	Fetch(ctx context.Context, tag string, limit int) ([]models.CreatePostRequest, error)
}

// ServerAdapter delivers scraped posts to the PakSentiment server.
type ServerAdapter interface {
	// UploadPost sends req to POST /posts. A post the server already holds
	// yields a wrapped [ErrConflict].
	UploadPost(ctx context.Context, req models.CreatePostRequest) error
}
