// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks writes before they leave the client or reach
// the reference server database.
//
// Every rule violation has its own sentinel error, so both sides can map it
// to the same 400 message.
package validators

import "context"

// Validator validates a value. fields, when given, restricts the check to
// the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
