// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService runs the signup and login pipelines.
type AuthService interface {
	// Signup creates an account. It returns nil on success or an error
	// matching ErrValidation, ErrConflict (as *ConflictError) or
	// ErrServiceUnavailable.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login verifies credentials. It returns nil on success or an error
	// matching ErrInvalidCredentials or ErrServiceUnavailable.
	Login(ctx context.Context, req models.LoginRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics recording.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
