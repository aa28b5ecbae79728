// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every SELECT on users returns and
// scanUsers expects.
var userColumns = []string{"user_id", "username", "email", "password", "created_at"}

// buildFindByIdentifierQuery selects users whose username or email equals
// identifier. Rows are ordered by user_id so that "first match" is stable.
func buildFindByIdentifierQuery(builder sq.StatementBuilderType, identifier string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": identifier},
			sq.Eq{"email": identifier},
		}).
		OrderBy("user_id").
		ToSql()
}

// buildFindByUsernameOrEmailQuery selects users colliding with either the
// given username or the given email, ordered by user_id.
func buildFindByUsernameOrEmailQuery(builder sq.StatementBuilderType, username, email string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		OrderBy("user_id").
		ToSql()
}

// buildCreateUserQuery inserts user with createdAt and returns the new
// user_id.
func buildCreateUserQuery(builder sq.StatementBuilderType, user models.User, createdAt time.Time) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns("username", "email", "password", "created_at").
		Values(user.Username, user.Email, user.Password, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
}
