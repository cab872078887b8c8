// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// makeRequest создаёт запрос с логгером в контексте, как это делает withTraceID.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		handlerDelay     time.Duration
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/restaurants",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/restaurants"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/reviews",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
			},
		},
		{
			name:          "PUT 204 no body",
			method:        http.MethodPut,
			path:          "/restaurants/1?is_favorite=true",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"uri":"/restaurants/1?is_favorite=true"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "GET 404",
			method:          http.MethodGet,
			path:            "/restaurants/404",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "Not Found",
			checkLogContains: []string{
				`"status":404`,
			},
		},
		{
			name:            "slow handler",
			method:          http.MethodGet,
			path:            "/reviews",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			handlerDelay:    20 * time.Millisecond,
			checkLogContains: []string{
				`"duration":`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	// обработчик ничего не пишет: статус по умолчанию 200
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/health", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rr, w.Unwrap())
}

func TestRoutePattern_Unmatched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.Equal(t, "unmatched", routePattern(req))
}
