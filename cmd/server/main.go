package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/handler"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/server"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand runs the remote store. Flags are handed to the config
// package as they are, so cobra's own flag parsing is off.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                "vocab-server [flags]",
		Short:              "Remote card and progress store",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo()
			return runServer(cmd.Context(), args)
		},
	}
	root.AddCommand(newTokenCommand())

	return root
}

func runServer(ctx context.Context, args []string) error {
	log := logger.NewLogger("vocab-server")

	cfg, err := loadConfig(args)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return err
	}
	return nil
}

func loadConfig(args []string) (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = version()
	}
	return cfg, nil
}

func version() string {
	if buildVersion == "" {
		return "N/A"
	}
	return buildVersion
}

func printBuildInfo() {
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", version())
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
