// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
	"github.com/MKhiriev/go-restaurant-reviews/internal/store"
)

// Services aggregates the reference server services.
type Services struct {
	RestaurantService RestaurantService
	ReviewService     ReviewService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, logger),
		ReviewService:     NewReviewValidationService().Wrap(NewReviewService(storages.ReviewRepository, logger)),
		AppInfoService:    appInfo,
	}, nil
}
