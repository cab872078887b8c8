// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the reference
// server: the resty HTTP client wrapper, JSON response writing, trace id
// generation and the typed context keys carrying it.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so string keys from other
// packages never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key of the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
