// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation, ""), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation, "")), want: UniqueViolation},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure, ""), want: ConnectionFailure},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow, ""), want: ConnectionFailure},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError, ""), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_ConstraintColumn(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, "username", c.ConstraintColumn(pgError(pgerrcode.UniqueViolation, "users_username_key")))
	assert.Equal(t, "email", c.ConstraintColumn(pgError(pgerrcode.UniqueViolation, "users_email_key")))
	assert.Equal(t, "username", c.ConstraintColumn(&pgconn.PgError{Detail: "Key (username)=(alice) already exists."}))
	assert.Empty(t, c.ConstraintColumn(pgError(pgerrcode.UniqueViolation, "other")))
	assert.Empty(t, c.ConstraintColumn(errors.New("boom")))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, ConnectionFailure, c.Classify(sqlite3.Error{Code: sqlite3.ErrCantOpen}))
	assert.Equal(t, Unclassified, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.Equal(t, Unclassified, c.Classify(errors.New("boom")))
	assert.Empty(t, c.ConstraintColumn(errors.New("boom")))
}

func TestColumnFromText(t *testing.T) {
	assert.Equal(t, "email", columnFromText("UNIQUE constraint failed: users.email"))
	assert.Equal(t, "username", columnFromText("UNIQUE constraint failed: users.username"))
	assert.Equal(t, "email", columnFromText("Key (email)=(a@b.c) already exists."))
	assert.Empty(t, columnFromText("something else"))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "connection_failure", ConnectionFailure.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
