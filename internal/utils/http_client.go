// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the whole resty API stays available.
//
//	client := utils.NewHTTPClient("http://localhost:1337", 10*time.Second)
//	resp, err := client.R().Get("/restaurants")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client resolving relative request
// URLs against baseURL. A zero timeout leaves requests unbounded.
// Retries are disabled: undelivered writes are handled by the caller.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
