// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/models"
)

// Register implements [app.Module]. It installs the middleware chain and
// every route of the server on r.
func (h *Handler) Register(r app.Router) error {
	if h.services == nil || h.services.PostService == nil || h.services.AppInfoService == nil {
		return ErrNoServices
	}
	h.router = r

	r.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	r.NotFound(cannotRoute)
	r.MethodNotAllowed(CheckHTTPMethod(r.Routes(), r))

	// meta
	r.Handle(app.Route{
		Method:      http.MethodGet,
		Pattern:     "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"meta"},
		OperationID: "getHealth",
		Response:    models.HealthResponse{},
		Handler:     h.getHealth,
	})
	r.Handle(app.Route{
		Method:      http.MethodGet,
		Pattern:     "/version",
		Summary:     "Server version",
		Description: "Returns the running server version as plain text.",
		Tags:        []string{"meta"},
		OperationID: "getVersion",
		Handler:     h.getServerVersion,
	})

	// posts
	r.Handle(app.Route{
		Method:      http.MethodPost,
		Pattern:     "/posts",
		Summary:     "Ingest a scraped post",
		Tags:        []string{"posts"},
		OperationID: "createPost",
		Body:        models.CreatePostRequest{},
		Response:    models.Post{},
		Status:      http.StatusCreated,
		Handler:     h.createPost,
	})
	r.Handle(app.Route{
		Method:      http.MethodGet,
		Pattern:     "/posts",
		Summary:     "List buffered posts",
		Description: "Returns the most recently ingested posts, newest first.",
		Tags:        []string{"posts"},
		OperationID: "listPosts",
		Query:       models.ListPostsQuery{},
		Response:    []models.Post{},
		Handler:     h.listPosts,
	})
	r.Handle(app.Route{
		Method:      http.MethodGet,
		Pattern:     "/posts/{id}",
		Summary:     "Get a post by id",
		Tags:        []string{"posts"},
		OperationID: "getPost",
		Response:    models.Post{},
		Handler:     h.getPost,
	})

	h.logger.Debug().Msg("http routes registered")
	return nil
}
