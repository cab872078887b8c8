// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
)

func encodeRecord[T any](key int64, value T) (Record, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return Record{}, fmt.Errorf("encode record %d: %w", key, err)
	}
	return Record{Key: key, Payload: payload}, nil
}

func decodeRecord[T any](c Collection, rec Record) (T, error) {
	var value T
	if err := json.Unmarshal(rec.Payload, &value); err != nil {
		return value, fmt.Errorf("%w: %s[%d]: %w", ErrCorruptedRecord, c, rec.Key, err)
	}
	return value, nil
}
