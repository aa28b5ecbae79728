// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the signup and login handlers, and middleware
// used by the API. Cross-cutting concerns such as request tracing, access
// logging, CORS and request metrics are handled in this package before
// requests are delegated to the service layer.
package http
