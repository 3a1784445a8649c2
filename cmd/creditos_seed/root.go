package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/pkg/config/env"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "creditos-seed",
		Short: "Manages the test creditos of a storage backend",
		Long: `creditos-seed generates and deletes TESTE creditos directly in the
storage backend selected by STORAGE_TYPE, without going through the API.

Generated creditos are numbered TESTE000001.. and grouped by the NFS-e
TESTE_NFSE001..; every run replaces the previous test set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			if opts.envFile != "" {
				return env.LoadDotEnv("local", opts.envFile)
			}
			if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/creditos_seed/.env"); err != nil {
				slog.Info("Skipping .env environment variables...", "error", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path of a .env file with the storage configuration")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(newGenerateCmd(), newDeleteCmd(), newImportCmd())
	return cmd
}

// withBackend opens the configured storage backend for the duration of fn
func withBackend(ctx context.Context, fn func(*factory.Backend) error) error {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load storage configuration: %w", err)
	}

	backend, err := factory.NewBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	return fn(backend)
}
