// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault entries, user data snapshots and parsed
// storage requests before the services act on them.
//
// Each validator accepts a fixed set of model types and, optionally, the
// names of the fields to check. Without field names the validator applies
// its default rule set for the type.
package validators

import "context"

// Validator checks obj, limited to fields when any are given. It returns
// ErrUnsupportedType for a type it does not know and ErrUnknownField for a
// field name it does not know.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
