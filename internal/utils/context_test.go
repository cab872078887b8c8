// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "abc" {
		t.Errorf("expected traceID=abc, got %s", traceID)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetTraceIDFromContext_WrongTypeOrEmpty(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)
	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}

	if _, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty trace id")
	}
}
