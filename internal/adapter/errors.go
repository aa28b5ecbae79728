// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ServerError is a non-2xx answer of the server.
type ServerError struct {
	StatusCode int
	// Entity is set for conflicts ("username" or "email").
	Entity  string
	Message string

	kind error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error {
	return e.kind
}
