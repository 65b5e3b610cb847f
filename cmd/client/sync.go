package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/client"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the synchronisation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *client.App, services *service.ClientServices) error {
				printStatus(cmd.OutOrStdout(), app.UserID(), services.SyncService.Status())
				return nil
			})
		},
	}
}

func newSyncCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Deliver pending progress and refresh the local cards from the remote store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *client.App, services *service.ClientServices) error {
				result, err := services.SyncService.ForceSync(ctx)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Delivered: %d, retrying: %d, dropped: %d\n",
					result.Delivered, result.Rescheduled, result.Dropped)
				if err != nil {
					return fmt.Errorf("sync: %w", err)
				}

				color.New(color.FgGreen).Fprintln(out, "Local cards refreshed.")
				printStatus(out, app.UserID(), services.SyncService.Status())
				return nil
			})
		},
	}
}

func printStatus(out io.Writer, userID string, status models.SyncStatus) {
	if userID == "" {
		userID = "(not signed in)"
	}

	online := color.New(color.FgRed).Sprint("offline")
	if status.Online {
		online = color.New(color.FgGreen).Sprint("online")
	}

	fmt.Fprintf(out, "User: %s\n", userID)
	fmt.Fprintf(out, "Network: %s\n", online)
	fmt.Fprintf(out, "Pending operations: %d\n", status.QueueSize)
	if status.LastSyncedAt != nil {
		fmt.Fprintf(out, "Last synced: %s\n", status.LastSyncedAt.Local().Format(time.DateTime))
	} else {
		fmt.Fprintln(out, "Last synced: never")
	}
}
