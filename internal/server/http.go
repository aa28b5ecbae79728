// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
	running  atomic.Bool

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Start binds the listen address and serves in the background. The returned
// channel receives a serve error, if any, and is closed when serving stops.
func (h *httpServer) Start() (<-chan error, error) {
	if !h.running.CompareAndSwap(false, true) {
		return nil, errAlreadyRunning
	}

	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.running.Store(false)
		return nil, err
	}
	h.listener = listener

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Err(err).Msg("HTTP server Serve")
			errCh <- err
		}
	}()

	h.logger.Info().Str("addr", listener.Addr().String()).Msg("HTTP server started")
	return errCh, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (h *httpServer) Shutdown(ctx context.Context) error {
	if !h.running.CompareAndSwap(true, false) {
		return nil
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
		return err
	}
	return nil
}

// Addr returns the bound address, or "" before Start.
func (h *httpServer) Addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return ""
}
