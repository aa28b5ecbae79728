// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

// authService is the concrete implementation of AuthService.
// It keeps no state between calls; the repository and the hasher are
// safe for concurrent use.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies the stored password hashes.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Signup creates a new account.
//
// Steps, in order:
//  1. password and confirmation must match, otherwise ErrPasswordsDoNotMatch
//     is returned without touching the store;
//  2. username, email and password must be non-empty (ErrInvalidDataProvided);
//  3. the password is hashed;
//  4. existing accounts with the same username or email yield a
//     *ConflictError naming the colliding entity;
//  5. the account is inserted. A unique violation raised by a concurrent
//     signup is reported as a *ConflictError as well.
//
// Store and hashing failures are wrapped around ErrServiceUnavailable.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	if req.Password != req.ConfirmPassword {
		log.Debug().Str("username", req.Username).Msg("signup rejected: passwords do not match")
		return ErrPasswordsDoNotMatch
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Debug().Str("username", req.Username).Str("email", req.Email).Msg("signup rejected: empty fields")
		return ErrInvalidDataProvided
	}

	hashed, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		log.Err(err).Msg("password hashing failed")
		return unavailable(err)
	}

	existing, err := a.userRepository.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("looking up existing users failed")
		return unavailable(err)
	}
	if len(existing) > 0 {
		return conflictWith(existing[0], req.Username)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return &ConflictError{Entity: EntityUsername}
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return &ConflictError{Entity: EntityEmail}
		case errors.Is(err, store.ErrUserAlreadyExists):
			return a.resolveConflict(ctx, req)
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return unavailable(err)
	}

	log.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("user signed up")
	return nil
}

// Login checks a username-or-email and password pair.
//
// The identifier is matched against both the username and the email column.
// When several accounts match, the one with the lowest user_id is used.
// Unknown identifiers yield ErrIdentifierNotFound, a wrong password yields
// ErrWrongPassword; both wrap ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) error {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.FindByIdentifier(ctx, req.UsernameOrEmail)
	if err != nil {
		log.Err(err).Msg("looking up user for login failed")
		return unavailable(err)
	}
	if len(users) == 0 {
		log.Debug().Str("identifier", req.UsernameOrEmail).Msg("login rejected: unknown identifier")
		return ErrIdentifierNotFound
	}

	user := users[0]
	if !a.hasher.Verify(req.Password, user.Password) {
		log.Debug().Int64("user_id", user.UserID).Msg("login rejected: wrong password")
		return ErrWrongPassword
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return nil
}

// resolveConflict names the colliding entity when the store reported a
// unique violation without the column. It repeats the pre-check lookup and
// falls back to the username.
func (a *authService) resolveConflict(ctx context.Context, req models.SignupRequest) error {
	existing, err := a.userRepository.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil || len(existing) == 0 {
		return &ConflictError{Entity: EntityUsername}
	}
	return conflictWith(existing[0], req.Username)
}

// conflictWith names the entity that collides with the first matching row:
// username when it equals the submitted one, email otherwise.
func conflictWith(existing models.User, username string) error {
	if existing.Username == username {
		return &ConflictError{Entity: EntityUsername}
	}
	return &ConflictError{Entity: EntityEmail}
}
