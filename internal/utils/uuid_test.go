// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTraceIDGenerator_GeneratesVersion7(t *testing.T) {
	g := NewTraceIDGenerator()

	first, second := g.Generate(), g.Generate()
	if first == second {
		t.Fatal("expected unique trace ids")
	}

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", parsed.Version())
	}
}
