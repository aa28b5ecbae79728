// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Conflict entities reported by [ConflictError].
const (
	EntityUsername = "username"
	EntityEmail    = "email"
)

var (
	// ErrValidation is the root of all input validation failures.
	ErrValidation = errors.New("validation failed")

	ErrPasswordsDoNotMatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password is too long", ErrValidation)
)

var (
	// ErrInvalidCredentials is the root of all login rejections.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrIdentifierNotFound = fmt.Errorf("%w: unknown username or email", ErrInvalidCredentials)
	ErrWrongPassword      = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
)

var (
	// ErrConflict is wrapped by every [ConflictError].
	ErrConflict = errors.New("user already exists")

	// ErrServiceUnavailable wraps store and hashing failures. The wrapped
	// cause is meant for logs only.
	ErrServiceUnavailable = errors.New("service unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ConflictError reports that the username or the email of a signup request
// is already taken.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return e.Entity + " already in use"
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
