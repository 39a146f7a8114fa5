// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/store"
	"github.com/paksentiment/paksentiment/models"
)

type postService struct {
	storage store.PostStorage
	ids     IDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewPostService constructs a [PostService] over storage. Post ids come from
// ids; timestamps are UTC.
func NewPostService(storage store.PostStorage, ids IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		storage: storage,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *postService) Ingest(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	source := models.Source(req.Source)
	if source != models.SourceTwitter && source != models.SourceReddit {
		return models.Post{}, fmt.Errorf("%w: unknown source %q", ErrInvalidDataProvided, req.Source)
	}

	post := models.Post{
		ID:          s.ids.Generate(),
		Source:      source,
		ExternalID:  req.ExternalID,
		Author:      req.Author,
		Title:       strings.TrimSpace(req.Title),
		Text:        strings.TrimSpace(req.Text),
		Tag:         strings.ToLower(strings.TrimSpace(req.Tag)),
		Score:       req.Score,
		URL:         req.URL,
		PublishedAt: req.PublishedAt.UTC(),
		IngestedAt:  s.now().UTC(),
	}

	if err := s.storage.Save(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("error saving post: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("post_id", post.ID).
		Str("source", string(post.Source)).
		Str("external_id", post.ExternalID).
		Msg("post ingested")

	return post, nil
}

func (s *postService) List(ctx context.Context, query models.ListPostsQuery) ([]models.Post, error) {
	posts, err := s.storage.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id string) (models.Post, error) {
	post, err := s.storage.Get(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}
	return post, nil
}
