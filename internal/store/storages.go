// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/logger"
)

// Storages groups the storages injected into the service layer.
type Storages struct {
	PostStorage PostStorage
}

// NewStorages builds every storage from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	posts, err := NewPostStorage(cfg.Posts, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{PostStorage: posts}, nil
}
