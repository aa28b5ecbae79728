// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a persisted account.
// Username and Email are each unique across all users.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the store and is never exposed via JSON.
	UserID int64 `json:"-"`

	// Username is the unique public name of the account.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
