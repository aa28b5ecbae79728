// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "strings"

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error the repositories have no special
	// handling for. Such errors surface as store failures.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that an INSERT collided with an existing row
	// on a unique column.
	UniqueViolation

	// ConnectionFailure indicates that the database could not be reached or
	// dropped the connection.
	ConnectionFailure
)

// String implements fmt.Stringer for log output.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}

// uniqueColumns lists the unique columns of the users table, keyed by the
// constraint names used in the migrations.
var uniqueColumns = map[string]string{
	"users_username_key": "username",
	"users_email_key":    "email",
}

// columnFromText finds a unique column mentioned in a driver message or
// detail such as "Key (email)=(a@b.c) already exists." or
// "UNIQUE constraint failed: users.email".
func columnFromText(text string) string {
	for _, column := range uniqueColumns {
		if strings.Contains(text, "("+column+")") || strings.Contains(text, "users."+column) {
			return column
		}
	}
	return ""
}
