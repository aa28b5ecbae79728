// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store accessor. Every query binds its
// inputs as parameters.
type UserRepository interface {
	// FindByIdentifier returns the users whose username or email equals
	// identifier, ordered by user_id. An empty slice means no match.
	FindByIdentifier(ctx context.Context, identifier string) ([]models.User, error)

	// FindByUsernameOrEmail returns the users whose username equals username
	// or whose email equals email, ordered by user_id.
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)

	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A unique-constraint violation is reported as ErrUsernameAlreadyExists
	// or ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator maps driver-specific errors to the conditions the
// repository reacts to.
type ErrorClassificator interface {
	// Classify returns the [ErrorClassification] of err.
	Classify(err error) ErrorClassification

	// ConstraintColumn returns the column whose unique constraint err
	// violated, or "" when it cannot be determined.
	ConstraintColumn(err error) string
}

// HealthChecker reports whether the underlying database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
