// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paksentiment/paksentiment/internal/adapter"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/utils"
	"github.com/paksentiment/paksentiment/models"
	"github.com/rs/zerolog"
)

// RoundStats counts what happened to the posts of one scrape round.
type RoundStats struct {
	Fetched  int
	Uploaded int
	Skipped  int
	Failed   int
}

// ScrapeWorker fetches posts for every configured tag from every source and
// uploads them to the server.
type ScrapeWorker struct {
	sources  []adapter.Source
	uploader adapter.ServerAdapter

	tags     []string
	limit    int
	interval time.Duration

	logger *logger.Logger
}

// NewScrapeWorker creates a worker over sources. A nil uploader only logs
// the fetched posts.
func NewScrapeWorker(sources []adapter.Source, uploader adapter.ServerAdapter, cfg config.Scraper, logger *logger.Logger) *ScrapeWorker {
	return &ScrapeWorker{
		sources:  sources,
		uploader: uploader,
		tags:     cfg.Tags,
		limit:    cfg.Limit,
		interval: cfg.Interval,
		logger:   logger,
	}
}

// Run scrapes once, then once per interval until ctx is cancelled. With a
// zero interval it returns after the first round.
func (w *ScrapeWorker) Run(ctx context.Context) error {
	w.Scrape(ctx)
	if w.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("scrape worker stopped")
			return nil
		case <-ticker.C:
			w.Scrape(ctx)
		}
	}
}

// Scrape runs one round. Source and upload failures are logged and counted;
// they never abort the round. Cancelling ctx does.
func (w *ScrapeWorker) Scrape(ctx context.Context) RoundStats {
	var stats RoundStats

	traceID := uuid.NewString()
	log := w.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	for _, source := range w.sources {
		for _, tag := range w.tags {
			if ctx.Err() != nil {
				return stats
			}

			posts, err := source.Fetch(ctx, tag, w.limit)
			if err != nil {
				log.Err(err).Str("source", source.Name()).Str("tag", tag).Msg("error fetching posts")
				continue
			}

			log.Info().Str("source", source.Name()).Str("tag", tag).Int("count", len(posts)).Msg("posts fetched")
			stats.Fetched += len(posts)

			for _, post := range posts {
				w.handlePost(ctx, log, post, &stats)
			}
		}
	}

	log.Info().
		Int("fetched", stats.Fetched).
		Int("uploaded", stats.Uploaded).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("scrape round finished")
	return stats
}

func (w *ScrapeWorker) handlePost(ctx context.Context, log *logger.Logger, post models.CreatePostRequest, stats *RoundStats) {
	log.Info().
		Str("source", post.Source).
		Str("external_id", post.ExternalID).
		Str("author", post.Author).
		Str("title", post.Title).
		Str("text", post.Text).
		Time("published_at", post.PublishedAt).
		Msg("post")

	if w.uploader == nil {
		return
	}

	err := w.uploader.UploadPost(ctx, post)
	switch {
	case err == nil:
		stats.Uploaded++
	case errors.Is(err, adapter.ErrConflict):
		log.Debug().Str("external_id", post.ExternalID).Msg("post already uploaded")
		stats.Skipped++
	default:
		log.Err(err).Str("external_id", post.ExternalID).Msg("error uploading post")
		stats.Failed++
	}
}
