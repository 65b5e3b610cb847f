package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

// newTokenCommand issues an access token signed with the server's key. It
// stands in for the authentication provider in development setups.
func newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "token <user-id> [server flags]",
		Short:              "Print a signed access token for a user",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		Args:               cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[1:])
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			token, err := service.NewAuthService(cfg.App, logger.Nop()).CreateToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}
}
