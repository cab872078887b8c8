// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	ErrInvalidFavoriteFlag = errors.New("invalid favorite flag")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
)
