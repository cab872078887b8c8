// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON is returned when a request body is not valid JSON.
var errInvalidJSON = errors.New("invalid JSON was passed")
