// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks cards, cards files and progress payloads before
// they reach a store.
package validators

import "context"

// Validator validates a value. fields optionally restricts the check to the
// named fields; see the Field* constants.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
