// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap starts the PakSentiment HTTP application: it builds the
// application from a module, installs the global validation policy,
// publishes the API document at /api and starts listening.
package bootstrap

import (
	"fmt"

	"github.com/paksentiment/paksentiment/internal/app"
	"github.com/paksentiment/paksentiment/internal/config"
	"github.com/paksentiment/paksentiment/internal/docs"
	"github.com/paksentiment/paksentiment/internal/logger"
	"github.com/paksentiment/paksentiment/internal/validators"
)

// DocsPath is where the API document and its UI are mounted.
const DocsPath = "api"

// GlobalValidationPolicy is applied to every payload bound by the
// application: undeclared fields are rejected and values are coerced into
// the declared types.
var GlobalValidationPolicy = validators.Policy{
	Whitelist:            true,
	ForbidNonWhitelisted: true,
	Transform:            true,
}

// DocumentDescriptor returns the metadata of the published API document.
func DocumentDescriptor() docs.Descriptor {
	return docs.NewDocumentBuilder().
		SetTitle("PakSentiment Swagger Documentation").
		SetDescription("i dont know yet").
		SetTermsOfService("not yet identified").
		SetLicense("MIT License", "https://en.wikipedia.org/wiki/MIT_License").
		AddServer("http://localhost:3000").
		SetVersion("1.0.0").
		Build()
}

// Bootstrap creates the application from module and returns once it is
// listening on cfg.Server. Errors are startup failures; nothing is retried.
func Bootstrap(module app.Module, cfg *config.StructuredConfig, log *logger.Logger) (*app.Application, error) {
	instance, err := app.New(module, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	instance.UseGlobalPipes(validators.NewValidationPipe(GlobalValidationPolicy))

	// the document is rendered after every module route is registered
	document, err := docs.CreateDocument(instance, DocumentDescriptor())
	if err != nil {
		return nil, fmt.Errorf("error creating API document: %w", err)
	}

	if err = docs.Setup(DocsPath, instance, document); err != nil {
		return nil, fmt.Errorf("error mounting API document: %w", err)
	}

	if err = instance.Listen(); err != nil {
		return nil, fmt.Errorf("error starting application: %w", err)
	}

	log.Info().
		Str("address", instance.Addr()).
		Str("docs", "/"+DocsPath).
		Msg("PakSentiment server started")

	return instance, nil
}
