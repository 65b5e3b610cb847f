package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/client"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var (
		yes        bool
		clearLocal bool
	)

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Upload progress recorded before signing in to the remote store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *client.App, services *service.ClientServices) error {
				out := cmd.OutOrStdout()
				migration := services.MigrationService

				stats, err := migration.Detect(ctx)
				if err != nil {
					return fmt.Errorf("detect local progress: %w", err)
				}
				if !stats.HasData {
					fmt.Fprintln(out, "No local progress to migrate.")
					return nil
				}

				fmt.Fprintf(out, "Found %d cards with local progress.\n", stats.Count)
				if err = migration.Prompt(); err != nil {
					return err
				}

				if !yes && !confirm(cmd.InOrStdin(), out, "Upload it to your account?") {
					fmt.Fprintln(out, "Migration skipped, local data kept.")
					return migration.Skip()
				}

				result, err := migration.Migrate(ctx, app.UserID())
				if err != nil {
					color.New(color.FgRed).Fprintf(out, "Migration failed: %v\n", err)
					return err
				}

				color.New(color.FgGreen).Fprintf(out, "Migrated %d cards.\n", result.Migrated)
				if result.Errors > 0 {
					color.New(color.FgYellow).Fprintf(out, "%d cards are unknown to the remote store.\n", result.Errors)
				}

				if clearLocal {
					if err = migration.ClearLocalData(ctx); err != nil {
						return fmt.Errorf("clear local data: %w", err)
					}
					fmt.Fprintln(out, "Local cards cleared.")
				}
				return nil
			})
		},
	}

	command.Flags().BoolVarP(&yes, "yes", "y", false, "migrate without asking")
	command.Flags().BoolVar(&clearLocal, "clear", false, "clear the local cards after a successful migration")

	return command
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
