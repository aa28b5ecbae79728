// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// FindByIdentifier implements [UserRepository].
func (r *userRepository) FindByIdentifier(ctx context.Context, identifier string) ([]models.User, error) {
	query, args, err := buildFindByIdentifierQuery(r.db.builder, identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.FindByIdentifier", query, args...)
}

// FindByUsernameOrEmail implements [UserRepository].
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	query, args, err := buildFindByUsernameOrEmailQuery(r.db.builder, username, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.FindByUsernameOrEmail", query, args...)
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists];
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - unique violation on an unknown column → [ErrUserAlreadyExists];
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	createdAt := r.now()
	query, args, err := buildCreateUserQuery(r.db.builder, user, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", classification).
			Msg("error inserting user")

		if classification == UniqueViolation {
			switch r.db.errorClassificator.ConstraintColumn(err) {
			case "username":
				return models.User{}, ErrUsernameAlreadyExists
			case "email":
				return models.User{}, ErrEmailAlreadyExists
			default:
				return models.User{}, ErrUserAlreadyExists
			}
		}

		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.UserID = userID
	user.CreatedAt = createdAt

	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning users")
		return nil, err
	}

	return users, nil
}

func scanUsers(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0, 1)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.Email, &user.Password, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
