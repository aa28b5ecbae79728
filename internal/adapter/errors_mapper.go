// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	serverErr := &ServerError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		serverErr.Entity = body.Entity
		serverErr.Message = body.Error
	} else {
		serverErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if serverErr.Message == "" {
		serverErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		serverErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		serverErr.kind = ErrUnauthorized
	case http.StatusConflict:
		serverErr.kind = ErrConflict
	case http.StatusInternalServerError:
		serverErr.kind = ErrInternalServerError
	default:
		serverErr.kind = ErrUnexpectedStatus
	}

	return serverErr
}
