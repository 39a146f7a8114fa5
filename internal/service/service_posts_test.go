// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/store"
	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/paksentiment/paksentiment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) Generate() string {
	s.next++
	return fmt.Sprintf("post-%d", s.next)
}

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestPostService(t *testing.T) *postService {
	t.Helper()

	storage, err := store.NewPostStorage(config.Posts{Capacity: 10}, logger.Nop())
	require.NoError(t, err)

	svc := NewPostService(storage, &sequenceIDs{}, logger.Nop()).(*postService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func tweetRequest(externalID string) models.CreatePostRequest {
	return models.CreatePostRequest{
		Source:      "twitter",
		ExternalID:  externalID,
		Author:      "1234",
		Text:        "  Load shedding again in Lahore  ",
		Tag:         " Pakistan ",
		PublishedAt: time.Date(2026, 10, 18, 14, 0, 0, 0, time.FixedZone("PKT", 5*60*60)),
	}
}

// ─────────────────────────────────────────────
// Ingest
// ─────────────────────────────────────────────

func TestPostService_Ingest(t *testing.T) {
	svc := newTestPostService(t)

	post, err := svc.Ingest(context.Background(), tweetRequest("1"))

	require.NoError(t, err)
	assert.Equal(t, models.Post{
		ID:          "post-1",
		Source:      models.SourceTwitter,
		ExternalID:  "1",
		Author:      "1234",
		Text:        "Load shedding again in Lahore",
		Tag:         "pakistan",
		PublishedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		IngestedAt:  fixedNow,
	}, post)

	stored, err := svc.Get(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, post, stored)
}

func TestPostService_IngestDuplicate(t *testing.T) {
	svc := newTestPostService(t)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, tweetRequest("1"))
	require.NoError(t, err)

	_, err = svc.Ingest(ctx, tweetRequest("1"))
	assert.ErrorIs(t, err, store.ErrPostAlreadyExists)
}

func TestPostService_IngestUnknownSource(t *testing.T) {
	svc := newTestPostService(t)
	req := tweetRequest("1")
	req.Source = "myspace"

	_, err := svc.Ingest(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// List / Get
// ─────────────────────────────────────────────

func TestPostService_List(t *testing.T) {
	svc := newTestPostService(t)
	ctx := context.Background()
	for i := range 3 {
		_, err := svc.Ingest(ctx, tweetRequest(fmt.Sprint(i)))
		require.NoError(t, err)
	}

	posts, err := svc.List(ctx, models.ListPostsQuery{Tag: "pakistan", Limit: 2})

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_GetMissing(t *testing.T) {
	svc := newTestPostService(t)

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func TestPostValidationService(t *testing.T) {
	svc := NewPostValidationService().Wrap(newTestPostService(t))
	ctx := context.Background()

	t.Run("valid request reaches the inner service", func(t *testing.T) {
		post, err := svc.Ingest(ctx, tweetRequest("1"))
		require.NoError(t, err)
		assert.Equal(t, "post-1", post.ID)
	})

	t.Run("invalid request is rejected", func(t *testing.T) {
		req := tweetRequest("2")
		req.ExternalID = ""

		_, err := svc.Ingest(ctx, req)
		assert.ErrorIs(t, err, validators.ErrValidationFailed)
	})

	t.Run("invalid list query", func(t *testing.T) {
		_, err := svc.List(ctx, models.ListPostsQuery{Limit: 1000})
		assert.ErrorIs(t, err, validators.ErrValidationFailed)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	storages, err := store.NewStorages(config.Storage{Posts: config.Posts{Capacity: 5}}, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, config.App{Version: "1.0.0"}, noBuildInfo, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.PostService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_NoVersion(t *testing.T) {
	storages, err := store.NewStorages(config.Storage{Posts: config.Posts{Capacity: 5}}, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, config.App{}, noBuildInfo, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, services)
}
