// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a fresh, migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver:   config.DriverSQLite,
		Name:     filepath.Join(t.TempDir(), "users.db"),
		MaxConns: 4,
	}}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/users.db?_busy_timeout=5000", sqliteDSN("/tmp/users.db"))
	assert.Equal(t, "file:/tmp/users.db?_busy_timeout=5000", sqliteDSN("file:/tmp/users.db"))
	assert.Equal(t, "file:/tmp/users.db?mode=rwc&_busy_timeout=5000", sqliteDSN("file:/tmp/users.db?mode=rwc"))
	assert.Equal(t, "file:x.db?_busy_timeout=10", sqliteDSN("file:x.db?_busy_timeout=10"))
}

func TestSQLiteStorages_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)
	repo := s.UserRepository

	require.NoError(t, s.HealthCheck(ctx))

	created, err := repo.CreateUser(ctx, models.User{Username: "user1", Email: "u1@x.com", Password: "$2a$04$hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	byName, err := repo.FindByIdentifier(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, created.UserID, byName[0].UserID)
	assert.Equal(t, "u1@x.com", byName[0].Email)
	assert.Equal(t, "$2a$04$hash", byName[0].Password)
	assert.True(t, created.CreatedAt.Equal(byName[0].CreatedAt))

	byEmail, err := repo.FindByIdentifier(ctx, "u1@x.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, created.UserID, byEmail[0].UserID)

	none, err := repo.FindByIdentifier(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	collisions, err := repo.FindByUsernameOrEmail(ctx, "other", "u1@x.com")
	require.NoError(t, err)
	require.Len(t, collisions, 1)
	assert.Equal(t, "user1", collisions[0].Username)
}

func TestSQLiteStorages_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).UserRepository

	_, err := repo.CreateUser(ctx, models.User{Username: "user1", Email: "u1@x.com", Password: "h"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "user1", Email: "other@x.com", Password: "h"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = repo.CreateUser(ctx, models.User{Username: "user2", Email: "u1@x.com", Password: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSQLiteStorages_FirstMatchIsLowestID(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).UserRepository

	first, err := repo.CreateUser(ctx, models.User{Username: "a", Email: "shared", Password: "h"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, models.User{Username: "shared", Email: "b@x.com", Password: "h"})
	require.NoError(t, err)

	users, err := repo.FindByIdentifier(ctx, "shared")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.UserID, users[0].UserID)
}

// TestSQLiteStorages_ConcurrentInsertsSameUsername checks that the unique
// constraint, not the caller, decides the winner of a signup race.
func TestSQLiteStorages_ConcurrentInsertsSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).UserRepository

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.CreateUser(ctx, models.User{
				Username: "racer",
				Email:    fmt.Sprintf("racer%d@x.com", i),
				Password: "h",
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrUsernameAlreadyExists), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
}
