package main

import (
	"errors"
	"fmt"
	"time"

	"developer-service/pkg/jwt"

	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token for the mutating API routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cfg.JWT.Enabled() {
				return errors.New("JWT_SECRET is not set")
			}

			token, tokenID, err := jwt.NewJWTService(cfg.JWT).GenerateAccessToken(subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "token id: %s\n", tokenID)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "actor recorded in audit logs (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_ACCESS_EXPIRY)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
