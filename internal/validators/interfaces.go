// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the fleet domain models:
// users, ships, routes, fishing spots, catches and reports.
//
// The Validator interface is injected into services; field names passed to
// Validate restrict the check to a subset of fields, which update operations
// use to validate only what they touch.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
