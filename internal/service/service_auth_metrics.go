// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/models"
)

// AuthMetricsService counts signup and login outcomes of the wrapped
// AuthService.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) Signup(ctx context.Context, req models.SignupRequest) error {
	err := s.inner.Signup(ctx, req)
	s.metrics.RecordSignup(outcome(err))
	return err
}

func (s *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) error {
	err := s.inner.Login(ctx, req)
	s.metrics.RecordLogin(outcome(err))
	return err
}

func (s *AuthMetricsService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, ErrConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
