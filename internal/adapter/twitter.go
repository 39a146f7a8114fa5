// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/utils"
	"github.com/paksentiment/paksentiment/models"
	"golang.org/x/time/rate"
)

const (
	twitterSearchPath  = "/2/tweets/search/recent"
	twitterTweetFields = "created_at,author_id,text"
	twitterStatusURL   = "https://twitter.com/i/web/status/"

	// recent search accepts max_results in 10..100
	twitterMinResults = 10
	twitterMaxResults = 100
)

type twitterSearchResponse struct {
	Data []tweet `json:"data"`
}

type tweet struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type twitterSource struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewTwitterSource returns a [Source] backed by the Twitter v2 recent search
// API, authenticated with cfg.BearerToken.
func NewTwitterSource(cfg config.Twitter, timeout time.Duration, requestsPerMinute int, logger *logger.Logger) Source {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout, "")
	client.SetAuthToken(cfg.BearerToken)

	return &twitterSource{
		client:  client,
		limiter: newLimiter(requestsPerMinute),
		logger:  logger,
	}
}

func (s *twitterSource) Name() string {
	return string(models.SourceTwitter)
}

// Fetch implements [Source]. The requested page size is clamped to what the
// API accepts; at most limit posts are returned.
func (s *twitterSource) Fetch(ctx context.Context, tag string, limit int) ([]models.CreatePostRequest, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("twitter rate limiter: %w", err)
	}

	var result twitterSearchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":        tag,
			"max_results":  strconv.Itoa(min(max(limit, twitterMinResults), twitterMaxResults)),
			"tweet.fields": twitterTweetFields,
		}).
		SetResult(&result).
		Get(twitterSearchPath)
	if err != nil {
		return nil, fmt.Errorf("twitter search request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("twitter search: %w", ErrRateLimited)
	default:
		return nil, fmt.Errorf("twitter search: %w: http %d: %s",
			ErrUnexpectedStatus, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	if len(result.Data) == 0 {
		s.logger.Info().Str("tag", tag).Msg("no tweets found")
		return nil, nil
	}

	if limit > 0 && len(result.Data) > limit {
		result.Data = result.Data[:limit]
	}

	posts := make([]models.CreatePostRequest, 0, len(result.Data))
	for _, t := range result.Data {
		posts = append(posts, models.CreatePostRequest{
			Source:      string(models.SourceTwitter),
			ExternalID:  t.ID,
			Author:      t.AuthorID,
			Text:        t.Text,
			Tag:         tag,
			URL:         twitterStatusURL + t.ID,
			PublishedAt: t.CreatedAt,
		})
	}

	return posts, nil
}
