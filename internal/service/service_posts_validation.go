// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/paksentiment/paksentiment/internal/validators"
	"github.com/paksentiment/paksentiment/models"
)

// PostValidationService validates requests before they reach the wrapped
// [PostService], for callers that do not go through the HTTP validation
// pipe.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *PostValidationService) Ingest(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.Ingest(ctx, req)
}

func (v *PostValidationService) List(ctx context.Context, query models.ListPostsQuery) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, &query); err != nil {
		return nil, fmt.Errorf("error during list query validation: %w", err)
	}

	return v.inner.List(ctx, query)
}

func (v *PostValidationService) Get(ctx context.Context, id string) (models.Post, error) {
	if id == "" {
		return models.Post{}, fmt.Errorf("%w: empty post id", ErrInvalidDataProvided)
	}

	return v.inner.Get(ctx, id)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
