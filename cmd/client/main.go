// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a command-line client of the go-user-auth server.
package main

import (
	"os"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewConsoleLogger("go-user-auth-client")

	cmd := NewRootCmd(log)
	cmd.Version = info.String()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
