// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/models"
)

// errorRule maps a service error to a status code and message. Rules are
// checked in order, so specific errors must precede the errors they wrap.
type errorRule struct {
	target  error
	status  int
	message string
}

var errorRules = []errorRule{
	{target: service.ErrPasswordsDoNotMatch, status: http.StatusBadRequest, message: msgPasswordsDoNotMatch},
	{target: service.ErrPasswordTooLong, status: http.StatusBadRequest, message: msgPasswordTooLong},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: msgMissingFields},
	{target: service.ErrValidation, status: http.StatusBadRequest, message: msgInvalidData},
	{target: service.ErrIdentifierNotFound, status: http.StatusUnauthorized, message: msgUnknownIdentifier},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: msgInvalidCredentials},
}

var conflictMessages = map[string]string{
	service.EntityUsername: msgUsernameInUse,
	service.EntityEmail:    msgEmailInUse,
}

// errorResponse returns the status code and body for err. Errors outside
// the taxonomy become a 500 with a generic message.
func errorResponse(err error) (int, models.ErrorResponse) {
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, models.ErrorResponse{
			Entity: conflict.Entity,
			Error:  conflictMessages[conflict.Entity],
		}
	}

	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.status, models.ErrorResponse{Error: rule.message}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: msgServiceUnavailable}
}
