// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			driver:             "pgx",
			builder:            dollarBuilder,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		now:    func() time.Time { return fixedNow },
		logger: l,
	}
	return repo, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

const (
	selectUsersQuery = "SELECT user_id, username, email, password, created_at FROM users WHERE (username = $1 OR email = $2) ORDER BY user_id"
	insertUserQuery  = "INSERT INTO users (username,email,password,created_at) VALUES ($1,$2,$3,$4) RETURNING user_id"
)

// ── FindByIdentifier ─────────────────────────────────────────────────────────

func TestFindByIdentifier_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WithArgs("alice", "alice").
		WillReturnRows(userRows().AddRow(1, "alice", "alice@example.com", "hash", fixedNow))

	users, err := repo.FindByIdentifier(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.User{UserID: 1, Username: "alice", Email: "alice@example.com", Password: "hash", CreatedAt: fixedNow}, users[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_MultipleRowsKeepOrder(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WithArgs("shared", "shared").
		WillReturnRows(userRows().
			AddRow(1, "shared", "first@example.com", "h1", fixedNow).
			AddRow(2, "second", "shared", "h2", fixedNow))

	users, err := repo.FindByIdentifier(context.Background(), "shared")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].UserID)
	assert.Equal(t, int64(2), users[1].UserID)
}

func TestFindByIdentifier_NotFoundReturnsEmpty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WithArgs("ghost", "ghost").
		WillReturnRows(userRows())

	users, err := repo.FindByIdentifier(context.Background(), "ghost")

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestFindByIdentifier_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindByIdentifier(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestFindByIdentifier_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.FindByIdentifier(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindByIdentifier_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WillReturnRows(userRows().
			AddRow(1, "alice", "alice@example.com", "hash", fixedNow).
			RowError(0, errors.New("connection reset")))

	_, err := repo.FindByIdentifier(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── FindByUsernameOrEmail ────────────────────────────────────────────────────

func TestFindByUsernameOrEmail_BindsBothValues(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WithArgs("alice", "alice@example.com").
		WillReturnRows(userRows().AddRow(7, "alice", "other@example.com", "hash", fixedNow))

	users, err := repo.FindByUsernameOrEmail(context.Background(), "alice", "alice@example.com")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameOrEmail_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersQuery)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure, ""))

	_, err := repo.FindByUsernameOrEmail(context.Background(), "alice", "alice@example.com")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "$2a$10$hash"}

	mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
		WithArgs(user.Username, user.Email, user.Password, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, user.Username, created.Username)
	assert.Equal(t, user.Password, created.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolations(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "username constraint",
			err:     pgError(pgerrcode.UniqueViolation, "users_username_key"),
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name:    "email constraint",
			err:     pgError(pgerrcode.UniqueViolation, "users_email_key"),
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "email from detail",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (email)=(a@b.c) already exists."},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "unknown constraint",
			err:     pgError(pgerrcode.UniqueViolation, "users_pkey"),
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice", Email: "a@b.c"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrUserAlreadyExists)
			assert.NotErrorIs(t, err, ErrExecutingStatement)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("not-a-number"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
