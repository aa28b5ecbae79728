// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
)

type healthService struct {
	checker store.HealthChecker
	logger  *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.HealthCheck(ctx); err != nil {
		s.logger.Err(err).Msg("health check failed")
		return unavailable(err)
	}
	return nil
}
