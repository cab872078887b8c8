// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

func TestGetReviews_All(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewRepository(db, logger.Nop())
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM reviews ORDER BY created_at ASC, id ASC").
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(1, 1, "Steve", 4, "Mission Chinese Food has grown up", now, now).
			AddRow(2, 2, "Morgan", 5, "This place is a blast", now, now))

	reviews, err := repo.GetReviews(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Steve", reviews[0].Name)
	assert.Equal(t, now.UnixMilli(), reviews[0].CreatedAt.UnixMilli())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReviews_ByRestaurant(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewRepository(db, logger.Nop())
	id := int64(2)

	mock.ExpectQuery(`SELECT (.+) FROM reviews WHERE restaurant_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(reviewColumns))

	reviews, err := repo.GetReviews(context.Background(), &id)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestGetReviews_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM reviews").WillReturnError(errors.New("boom"))

	_, err := repo.GetReviews(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"))
}

func TestCreateReview(t *testing.T) {
	review := models.NewReview{RestaurantID: 1, Name: "Jack", Rating: 4, Comments: "fine"}
	now := time.Now()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{
			name: "success",
			rows: sqlmock.NewRows(reviewColumns).AddRow(31, 1, "Jack", 4, "fine", now, now),
		},
		{
			name:    "unknown restaurant",
			dbErr:   pgError(pgerrcode.ForeignKeyViolation),
			wantErr: ErrRestaurantNotFound,
		},
		{
			name:    "rating out of range",
			dbErr:   pgError(pgerrcode.CheckViolation),
			wantErr: ErrInvalidReview,
		},
		{
			name:    "value too long",
			dbErr:   pgError(pgerrcode.StringDataRightTruncationDataException),
			wantErr: ErrInvalidReview,
		},
		{
			name:    "unexpected",
			dbErr:   errors.New("network"),
			wantMsg: "unexpected DB error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewReviewRepository(db, logger.Nop())

			expect := mock.ExpectQuery(`INSERT INTO reviews \(restaurant_id,name,rating,comments\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING`).
				WithArgs(review.RestaurantID, review.Name, review.Rating, review.Comments)
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			created, err := repo.CreateReview(context.Background(), review)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(31), created.ID)
				assert.Equal(t, review.Name, created.Name)
				assert.False(t, created.CreatedAt.IsZero())
			}
		})
	}
}
