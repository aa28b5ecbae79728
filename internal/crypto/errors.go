// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by Hash for passwords bcrypt cannot
	// process (longer than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidCost is returned by NewBCryptHasher for a work factor
	// outside of bcrypt's accepted range.
	ErrInvalidCost = errors.New("invalid bcrypt cost")

	// ErrHashingFailed wraps any other failure of the hashing function.
	ErrHashingFailed = errors.New("password hashing failed")
)
