// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/http"
	"time"
)

// RequestOptions carries the transport options of a remote request.
type RequestOptions struct {
	Method string `json:"method"`

	// Body is the serialized request body, nil for body-less requests.
	Body *string `json:"body,omitempty"`
}

// RequestDescriptor fully describes a remote request so that it can be
// replayed later without any extra context.
type RequestDescriptor struct {
	URL     string         `json:"url"`
	Options RequestOptions `json:"options"`
}

// MethodOrDefault returns the HTTP method, GET when none is set.
func (d RequestDescriptor) MethodOrDefault() string {
	if d.Options.Method == "" {
		return http.MethodGet
	}
	return d.Options.Method
}

func (d RequestDescriptor) String() string {
	return fmt.Sprintf("%s %s", d.MethodOrDefault(), d.URL)
}

// PendingRequest is a write that could not be delivered and waits in the
// local queue. ID is assigned by the store on insertion and defines the
// replay order.
type PendingRequest struct {
	ID        int64          `json:"-"`
	URL       string         `json:"url"`
	Options   RequestOptions `json:"options"`
	CreatedAt time.Time      `json:"created_at"`
}

// Descriptor returns the request that has to be replayed.
func (p PendingRequest) Descriptor() RequestDescriptor {
	return RequestDescriptor{URL: p.URL, Options: p.Options}
}

// RequestState is the lifecycle state of a write request.
type RequestState int

const (
	RequestStateUnsent RequestState = iota
	RequestStateDelivered
	RequestStateQueued
)

func (s RequestState) String() string {
	switch s {
	case RequestStateUnsent:
		return "unsent"
	case RequestStateDelivered:
		return "delivered"
	case RequestStateQueued:
		return "queued"
	default:
		return fmt.Sprintf("RequestState(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s RequestState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *RequestState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unsent":
		*s = RequestStateUnsent
	case "delivered":
		*s = RequestStateDelivered
	case "queued":
		*s = RequestStateQueued
	default:
		return fmt.Errorf("unknown request state %q", text)
	}
	return nil
}
