// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-visible messages.
const (
	msgLoginSuccessful  = "Login successful"
	msgSignupSuccessful = "Signup successful"

	msgInvalidJSON         = "Invalid JSON was passed"
	msgPasswordsDoNotMatch = "Passwords do not match"
	msgPasswordTooLong     = "Password is too long"
	msgMissingFields       = "Username, email and password are required"
	msgUnknownIdentifier   = "Invalid username or email"
	msgInvalidCredentials  = "Invalid username or email or password"
	msgUsernameInUse       = "Username already in use."
	msgEmailInUse          = "Email already in use."
	msgServiceUnavailable  = "Cannot provide service right now!"
	msgInvalidData         = "Invalid data provided"
)
