// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is returned on successful signup and login.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request.
//
// Entity is set only for conflicts and names the field that collided
// with an existing account ("username" or "email").
type ErrorResponse struct {
	Entity string `json:"entity,omitempty"`
	Error  string `json:"error"`
}
