// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNetworkFailure means no HTTP answer was received.
	ErrNetworkFailure = errors.New("network failure")

	// ErrRemote means the server answered with a non-2xx status or a body
	// that could not be decoded.
	ErrRemote = errors.New("remote error")

	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("not found")
	ErrServerUnavailable = errors.New("server unavailable")
)

// Delivered reports whether a request that ended with err reached the server
// and was answered with a non-5xx status. Such requests must not be resent.
func Delivered(err error) bool {
	if err == nil {
		return true
	}

	return errors.Is(err, ErrRemote) && !errors.Is(err, ErrServerUnavailable)
}
