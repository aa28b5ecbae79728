// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-user-auth HTTP API.
//
// [AuthAdapter] hides the transport from the CLI. Non-2xx responses are
// decoded into [*ServerError], which wraps one of the sentinel errors from
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

// AuthAdapter talks to the signup and login endpoints of the server.
type AuthAdapter interface {
	// Signup creates an account. It returns the server's success message.
	Signup(ctx context.Context, req models.SignupRequest) (string, error)

	// Login checks the credentials. It returns the server's success message.
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}
