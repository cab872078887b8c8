// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrRemote, ErrBadRequest, body)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRemote, ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: http %d: %s", ErrRemote, ErrServerUnavailable, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemote, resp.StatusCode(), body)
	}
}

// DecodeJSON decodes the body of resp into T. A malformed body is reported
// as [ErrRemote].
func DecodeJSON[T any](resp *Response) (T, error) {
	var value T
	if resp == nil {
		return value, fmt.Errorf("%w: empty response", ErrRemote)
	}

	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return value, fmt.Errorf("%w: malformed json: %w", ErrRemote, err)
	}

	return value, nil
}
