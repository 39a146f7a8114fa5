// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the global request-validation policy.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures,
//     with optional field-level scoping. [StructValidator] implements it on top
//     of go-playground/validator using `validate` struct tags.
//   - Policy: the three switches (whitelist, forbid non-whitelisted,
//     transform) applied to every bound payload.
//   - ValidationPipe: filters a plain payload against the fields declared on
//     a target struct, validates it, and produces the value handed to the
//     handler.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
