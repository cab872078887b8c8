// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-restaurant-reviews/internal/app"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/service"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
	"github.com/MKhiriev/go-restaurant-reviews/internal/utils"
	"github.com/MKhiriev/go-restaurant-reviews/internal/validators"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

type errorReply struct {
	status  int
	message string
}

// errorReplies is ordered: validation errors are wrapped in
// service.ErrInvalidDataProvided and must match first.
var errorReplies = []struct {
	target error
	reply  errorReply
}{
	{validators.ErrInvalidRestaurantID, errorReply{http.StatusBadRequest, app.MsgInvalidRestaurantID}},
	{validators.ErrEmptyReviewerName, errorReply{http.StatusBadRequest, app.MsgEmptyReviewerName}},
	{validators.ErrReviewerNameTooLong, errorReply{http.StatusBadRequest, app.MsgReviewerNameTooLong}},
	{validators.ErrInvalidRating, errorReply{http.StatusBadRequest, app.MsgInvalidRating}},
	{validators.ErrCommentsTooLong, errorReply{http.StatusBadRequest, app.MsgCommentsTooLong}},
	{models.ErrInvalidFavoriteFlag, errorReply{http.StatusBadRequest, app.MsgInvalidFavoriteFlag}},
	{store.ErrInvalidReview, errorReply{http.StatusBadRequest, app.MsgInvalidReview}},
	{errInvalidJSON, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrRestaurantNotFound, errorReply{http.StatusNotFound, app.MsgRestaurantNotFound}},
	{service.ErrStorageUnavailable, errorReply{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
	{context.DeadlineExceeded, errorReply{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func replyFromError(err error) errorReply {
	for _, candidate := range errorReplies {
		if errors.Is(err, candidate.target) {
			return candidate.reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError logs err and answers with the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	reply := replyFromError(err)

	event := logger.FromRequest(r).Warn()
	if reply.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", reply.status).Msg(reply.message)

	utils.WriteError(w, reply.message, reply.status)
}
