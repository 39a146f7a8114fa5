// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/utils"
	"github.com/paksentiment/paksentiment/models"
	"golang.org/x/time/rate"
)

const (
	redditTokenPath = "/api/v1/access_token"
	redditWebURL    = "https://www.reddit.com"
	redditMaxLimit  = 100

	// tokens are refreshed this long before they expire
	redditTokenLeeway = time.Minute
)

type redditToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Author     string  `json:"author"`
	Score      int     `json:"score"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

type redditSource struct {
	auth *utils.HTTPClient
	api  *utils.HTTPClient

	subreddit string
	limiter   *rate.Limiter
	now       func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	logger *logger.Logger
}

// NewRedditSource returns a [Source] reading the hot listing of
// cfg.Subreddit with an application-only OAuth token.
func NewRedditSource(cfg config.Reddit, timeout time.Duration, requestsPerMinute int, logger *logger.Logger) Source {
	auth := utils.NewHTTPClient(strings.TrimRight(cfg.AuthURL, "/"), timeout, cfg.UserAgent)
	auth.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)

	return &redditSource{
		auth:      auth,
		api:       utils.NewHTTPClient(strings.TrimRight(cfg.APIURL, "/"), timeout, cfg.UserAgent),
		subreddit: cfg.Subreddit,
		limiter:   newLimiter(requestsPerMinute),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *redditSource) Name() string {
	return string(models.SourceReddit)
}

// Fetch implements [Source]. Every post is tagged with tag; the listing
// itself is not filtered by it.
func (s *redditSource) Fetch(ctx context.Context, tag string, limit int) ([]models.CreatePostRequest, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err = s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("reddit rate limiter: %w", err)
	}

	var listing redditListing
	resp, err := s.api.R().
		SetContext(ctx).
		SetAuthScheme("bearer").
		SetAuthToken(token).
		SetQueryParam("limit", strconv.Itoa(min(max(limit, 1), redditMaxLimit))).
		SetResult(&listing).
		Get("/r/" + s.subreddit + "/hot")
	if err != nil {
		return nil, fmt.Errorf("reddit listing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("reddit listing: %w", err)
	}

	posts := make([]models.CreatePostRequest, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		p := child.Data
		sec, frac := math.Modf(p.CreatedUTC)

		posts = append(posts, models.CreatePostRequest{
			Source:      string(models.SourceReddit),
			ExternalID:  p.Name,
			Author:      p.Author,
			Title:       p.Title,
			Text:        p.Selftext,
			Tag:         tag,
			Score:       p.Score,
			URL:         redditWebURL + p.Permalink,
			PublishedAt: time.Unix(int64(sec), int64(frac*1e9)).UTC(),
		})
	}

	return posts, nil
}

// accessToken returns the cached token, requesting a new one once the cached
// token is within redditTokenLeeway of expiring.
func (s *redditSource) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("reddit rate limiter: %w", err)
	}

	var token redditToken
	resp, err := s.auth.R().
		SetContext(ctx).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post(redditTokenPath)
	if err != nil {
		return "", fmt.Errorf("reddit token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("reddit token: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("reddit token: %w: empty access token", ErrUnauthorized)
	}

	s.token = token.AccessToken
	s.tokenExpiry = s.now().Add(time.Duration(token.ExpiresIn)*time.Second - redditTokenLeeway)

	s.logger.Debug().Time("expires", s.tokenExpiry).Msg("reddit access token refreshed")
	return s.token, nil
}
