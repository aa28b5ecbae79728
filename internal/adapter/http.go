// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	signupPath = "/signup"
	loginPath  = "/login"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the HTTP implementation of [AuthAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPAuthAdapter(cfg config.Adapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [AuthAdapter] with POST /signup.
func (h *httpAuthAdapter) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	return h.post(ctx, signupPath, req)
}

// Login implements [AuthAdapter] with POST /login.
func (h *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	return h.post(ctx, loginPath, req)
}

func (h *httpAuthAdapter) post(ctx context.Context, path string, body any) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("server responded")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}
