// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT violates a unique
	// constraint of the users table.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUsernameAlreadyExists is returned when the violated constraint is
	// the one on username. It wraps [ErrUserAlreadyExists].
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username", ErrUserAlreadyExists)

	// ErrEmailAlreadyExists is returned when the violated constraint is the
	// one on email. It wraps [ErrUserAlreadyExists].
	ErrEmailAlreadyExists = fmt.Errorf("%w: email", ErrUserAlreadyExists)
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails for
	// any reason other than a unique violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
