package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/app"
	"github.com/MKhiriev/go-vocab-keeper/internal/client"
	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// rootOptions are the flags shared by every command. They take precedence
// over the environment and the JSON config file.
type rootOptions struct {
	serverAddress string
	accessToken   string
	dbPath        string
	configPath    string
	logFile       string
	volatileQueue bool
}

func (o *rootOptions) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Adapter: config.Adapter{
			HTTPAddress: o.serverAddress,
			AccessToken: o.accessToken,
		},
		Storage: config.Storage{
			Local: config.Local{
				Path:          o.dbPath,
				VolatileQueue: o.volatileQueue,
			},
		},
		Log:          config.Log{FilePath: o.logFile},
		JSONFilePath: o.configPath,
	}
}

func (o *rootOptions) loadConfig() (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(o.overrides())
	if err != nil {
		return nil, err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = version()
	}
	return cfg, nil
}

// run opens the client app, runs fn against its services and closes it.
func (o *rootOptions) run(ctx context.Context, fn func(ctx context.Context, clientApp *client.App, services *service.ClientServices) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("vocab-client", logger.ClientLogFile{Path: cfg.Log.FilePath})

	clientApp, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}

	return clientApp.Run(ctx, func(ctx context.Context, services *service.ClientServices) error {
		err := fn(ctx, clientApp, services)
		if err != nil {
			log.Err(err).Msg("command failed")
		}
		return err
	})
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "vocab",
		Short:         "Offline-first German vocabulary flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.serverAddress, "server", "s", "", "remote store URL; empty runs local-only")
	flags.StringVarP(&opts.accessToken, "token", "t", "", "access token for the remote store")
	flags.StringVarP(&opts.dbPath, "db", "d", "", "local SQLite database file")
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON config file")
	flags.StringVar(&opts.logFile, "log-file", "", "log file")
	flags.BoolVar(&opts.volatileQueue, "volatile-queue", false, "keep pending sync operations in memory only")

	root.AddCommand(
		newVersionCommand(opts),
		newStatusCommand(opts),
		newSyncCommand(opts),
		newMigrateCommand(opts),
		newImportCommand(opts),
		newExportCommand(opts),
		newPublishCommand(opts),
		newListCommand(opts),
		newPracticeCommand(opts),
		newStatsCommand(opts),
	)

	return root
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		printError(root, err)
		os.Exit(1)
	}
}

func printError(cmd *cobra.Command, err error) {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %s\n", app.Describe(err))
}

func version() string {
	if buildVersion == "" {
		return "N/A"
	}
	return buildVersion
}

func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, commit := buildDate, buildCommit
			if date == "" {
				date = "N/A"
			}
			if commit == "" {
				commit = "N/A"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", version())
			fmt.Fprintf(out, "Build date: %s\n", date)
			fmt.Fprintf(out, "Build commit: %s\n", commit)
			return nil
		},
	}
}
