// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/models"
)

// postStorage is the default implementation of [PostStorage].
//
// Posts are kept in an LRU cache keyed by server id. A secondary index maps
// the dedup key (source + external id) to the server id; the eviction
// callback keeps both in step, so an evicted post may be ingested again.
type postStorage struct {
	mu sync.Mutex

	// posts is only touched with mu held.
	posts *lru.Cache[string, models.Post]

	// dedup maps models.Post.DedupKey to models.Post.ID.
	dedup map[string]string

	logger *logger.Logger
}

// NewPostStorage constructs a [PostStorage] holding at most cfg.Capacity
// posts.
func NewPostStorage(cfg config.Posts, logger *logger.Logger) (PostStorage, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, cfg.Capacity)
	}

	logger.Debug().Int("capacity", cfg.Capacity).Msg("creating post storage")

	s := &postStorage{
		dedup:  make(map[string]string, cfg.Capacity),
		logger: logger,
	}

	posts, err := lru.NewWithEvict[string, models.Post](cfg.Capacity, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("error creating post cache: %w", err)
	}
	s.posts = posts

	return s, nil
}

// onEvict runs inside posts.Add, while the caller already holds mu.
func (s *postStorage) onEvict(id string, post models.Post) {
	if s.dedup[post.DedupKey()] == id {
		delete(s.dedup, post.DedupKey())
	}
	s.logger.Debug().Str("post_id", id).Msg("post evicted from storage")
}

func (s *postStorage) Save(ctx context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := post.DedupKey()
	if existing, ok := s.dedup[key]; ok {
		return fmt.Errorf("%w: %s (id %s)", ErrPostAlreadyExists, key, existing)
	}

	s.posts.Add(post.ID, post)
	s.dedup[key] = post.ID

	return nil
}

func (s *postStorage) Get(ctx context.Context, id string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts.Get(id)
	if !ok {
		return models.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	return post, nil
}

func (s *postStorage) List(ctx context.Context, query models.ListPostsQuery) ([]models.Post, error) {
	s.mu.Lock()
	all := s.posts.Values()
	s.mu.Unlock()

	// Values is oldest first; reversing keeps ties newest first
	slices.Reverse(all)
	slices.SortStableFunc(all, func(a, b models.Post) int {
		return b.IngestedAt.Compare(a.IngestedAt)
	})

	limit := query.EffectiveLimit()
	result := make([]models.Post, 0, min(limit, len(all)))
	for _, post := range all {
		if len(result) == limit {
			break
		}
		if query.Source != "" && string(post.Source) != query.Source {
			continue
		}
		if query.Tag != "" && !strings.EqualFold(post.Tag, query.Tag) {
			continue
		}
		result = append(result, post)
	}

	return result, nil
}

func (s *postStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.posts.Len()
}
