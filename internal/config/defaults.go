// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "golang.org/x/crypto/bcrypt"

const (
	defaultHTTPAddress = "localhost:5000"
	defaultMaxConns    = 10
	defaultSSLMode     = "disable"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         "info",
		},
		Storage: Storage{
			DB: DB{
				Driver:   DriverPostgres,
				Port:     5432,
				SSLMode:  defaultSSLMode,
				MaxConns: defaultMaxConns,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
	}
}
