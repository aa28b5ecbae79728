// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/spf13/cobra"
)

// cli carries what the subcommands share once the root flags are parsed.
type cli struct {
	address string
	timeout time.Duration

	auth   adapter.AuthAdapter
	logger *logger.Logger
}

// NewRootCmd creates the root command of the client.
func NewRootCmd(log *logger.Logger) *cobra.Command {
	c := &cli{logger: log}

	cmd := &cobra.Command{
		Use:   "client",
		Short: "go-user-auth command-line client",
		Long: `Client for the go-user-auth server. Creates accounts and checks
credentials through the server's HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init()
		},
	}

	cmd.PersistentFlags().StringVarP(&c.address, "address", "a", "", "server address (env ADAPTER_ADDRESS)")
	cmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")

	cmd.AddCommand(newSignupCmd(c))
	cmd.AddCommand(newLoginCmd(c))

	return cmd
}

func (c *cli) init() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("load client config: %w", err)
	}
	if err = cfg.Override(c.address, c.timeout); err != nil {
		return fmt.Errorf("client config: %w", err)
	}

	c.auth, err = adapter.NewHTTPAuthAdapter(cfg.Adapter, c.logger)
	if err != nil {
		return fmt.Errorf("create auth adapter: %w", err)
	}

	return nil
}

// report prints the outcome of a request: the server message on success,
// the server's error text otherwise.
func report(cmd *cobra.Command, message string, err error) error {
	if err == nil {
		cmd.Println(message)
		return nil
	}

	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		cmd.PrintErrln("error:", serverErr.Message)
		return err
	}

	cmd.PrintErrln("error:", err)
	return err
}
