// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paksentiment/paksentiment/internal/utils"
	"github.com/paksentiment/paksentiment/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	out, err := h.router.Bind(r, &models.CreatePostRequest{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := bound[models.CreatePostRequest](out)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Ingest(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	out, err := h.router.BindQuery(r, &models.ListPostsQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	query, err := bound[models.ListPostsQuery](out)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
