// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository] over the "reviews" table.
type reviewRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewRepository) GetReviews(ctx context.Context, restaurantID *int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReviewsQuery(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReviews").Msg("error selecting reviews")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			log.Err(err).Str("func", "*reviewRepository.GetReviews").Msg("error: scanning error")
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reviews, nil
}

// CreateReview inserts review and returns the stored row.
//
// Error handling:
//   - unknown restaurant → [ErrRestaurantNotFound].
//   - constraint or data violations → [ErrInvalidReview].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.NewReview) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReviewQuery(review)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error inserting review")
		return models.Review{}, mapReviewWriteError(err)
	}

	return created, nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var (
		review               models.Review
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&review.ID,
		&review.RestaurantID,
		&review.Name,
		&review.Rating,
		&review.Comments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Review{}, err
	}

	review.CreatedAt = models.NewTimestamp(createdAt)
	review.UpdatedAt = models.NewTimestamp(updatedAt)

	return review, nil
}
