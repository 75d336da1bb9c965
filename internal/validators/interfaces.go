// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks task and credential payloads before they reach
// the services.
//
// Each validator accepts a value or pointer of its model and an optional
// list of field names. When no names are given every field of the model is
// checked; otherwise only the named rules run, which lets signin reuse the
// credentials validator with presence-only rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations report the first failed rule as a *[FieldError] that
// wraps one of the sentinel errors of this package.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
