// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input checks applied before cart items reach
// the store.
//
// Validators are opt-in: the service layer wraps the cart service with a
// validating decorator only when item validation is enabled in the
// configuration.
package validators

import "context"

// Validator validates an arbitrary input value. Optional field names
// restrict validation to the named subset.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
