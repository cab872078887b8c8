// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-restaurant-reviews/models"
)

// psql builds server queries with PostgreSQL "$n" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	restaurantColumns = []string{
		"id", "name", "address", "neighborhood", "cuisine_type",
		"lat", "lng", "photograph", "operating_hours", "is_favorite",
	}
	reviewColumns = []string{
		"id", "restaurant_id", "name", "rating", "comments", "created_at", "updated_at",
	}
)

func buildSelectRestaurantsQuery() (string, []any, error) {
	return psql.Select(restaurantColumns...).
		From("restaurants").
		OrderBy("id ASC").
		ToSql()
}

func buildSelectRestaurantQuery(id int64) (string, []any, error) {
	return psql.Select(restaurantColumns...).
		From("restaurants").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSetFavoriteQuery(id int64, favorite bool) (string, []any, error) {
	return psql.Update("restaurants").
		Set("is_favorite", favorite).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(restaurantColumns, ", ")).
		ToSql()
}

func buildSelectReviewsQuery(restaurantID *int64) (string, []any, error) {
	query := psql.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at ASC", "id ASC")

	if restaurantID != nil {
		query = query.Where(sq.Eq{"restaurant_id": *restaurantID})
	}

	return query.ToSql()
}

func buildInsertReviewQuery(review models.NewReview) (string, []any, error) {
	return psql.Insert("reviews").
		Columns("restaurant_id", "name", "rating", "comments").
		Values(review.RestaurantID, review.Name, review.Rating, review.Comments).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", ")).
		ToSql()
}
