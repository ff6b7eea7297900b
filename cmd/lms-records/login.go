package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login USERNAME PASSWORD",
	Short: "Log in to the LMS admin panel and store the refresh token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(cmd.Context(), args[0], args[1])
	},
}

var loginEnvCmd = &cobra.Command{
	Use:   "login-env",
	Short: "Log in using LMS_USERNAME and LMS_PASSWORD (.env supported)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Username == "" {
			return errors.New("no LMS_USERNAME environment variable found")
		}
		if cfg.Password == "" {
			return errors.New("no LMS_PASSWORD environment variable found")
		}
		return runLogin(cmd.Context(), cfg.Username, cfg.Password)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(loginEnvCmd)
}

func runLogin(ctx context.Context, username, password string) error {
	if !quiet {
		fmt.Println("Logging in... It's going to take a long time")
	}

	if _, err := newSession(cfg, newClient(cfg)).Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if !quiet {
		fmt.Println("Successfully logged in! The refresh token has been stored.")
		fmt.Println("It is necessary for all other commands to work")
	}
	return nil
}
