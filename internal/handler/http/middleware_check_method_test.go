// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with the auth route shapes.
// It does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	router.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1.0.0"))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "POST /login passes through", method: http.MethodPost, path: "/login", expectedStatus: http.StatusAccepted},
		{name: "POST /signup passes through", method: http.MethodPost, path: "/signup", expectedStatus: http.StatusCreated},
		{name: "GET /api/version passes through", method: http.MethodGet, path: "/api/version", expectedStatus: http.StatusOK},
		{name: "GET /login is hidden", method: http.MethodGet, path: "/login", expectedStatus: http.StatusNotFound},
		{name: "PUT /signup is hidden", method: http.MethodPut, path: "/signup", expectedStatus: http.StatusNotFound},
		{name: "DELETE /login is hidden", method: http.MethodDelete, path: "/login", expectedStatus: http.StatusNotFound},
		{name: "HEAD /signup is hidden", method: http.MethodHead, path: "/signup", expectedStatus: http.StatusNotFound},
		{name: "POST /api/version is hidden", method: http.MethodPost, path: "/api/version", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodPost, path: "/register", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, "1.0.0", rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan int, n)

	for i := range n {
		go func() {
			method := http.MethodPost
			if i%2 == 1 {
				method = http.MethodGet
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/login", nil))
			done <- rr.Code
		}()
	}

	for range n {
		code := <-done
		assert.True(t, code == http.StatusAccepted || code == http.StatusNotFound, "unexpected status code: %d", code)
	}
}
