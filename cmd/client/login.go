// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check account credentials",
		Long:  `Log in with a username or an email and a password.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := c.auth.Login(cmd.Context(), req)
			return report(cmd, message, err)
		},
	}

	cmd.Flags().StringVarP(&req.UsernameOrEmail, "user", "u", "", "username or email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
