// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the one-way password hashing used to store and
// verify user credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks plaintext candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a freshly salted hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed. The comparison is
	// constant-time; a malformed hash never matches.
	Verify(plaintext, hashed string) bool
}
