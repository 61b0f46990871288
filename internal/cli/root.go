// Package cli implements the devstore dev tool: local commands against the
// configured document store for seeding, snapshot sweeps, inspection, and
// integrity checks.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rosterhub/devstore/internal/config"
	"github.com/rosterhub/devstore/internal/factory"
	redisstore "github.com/rosterhub/devstore/internal/store/redis"
)

var app *factory.App

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var backend, path, redisURL string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "devstore",
		Short: "Local development data store for rosterhub",
		Long: `devstore manages the JSON document that substitutes for the database in
local development: roster, calendar, chat, reports, analytics snapshots,
and notifications.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Backend = backend
			}
			if path != "" {
				cfg.Path = path
			}
			if redisURL != "" {
				cfg.RedisURL = redisURL
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			factoryCfg := factory.Config{
				Backend:  cfg.Backend,
				FilePath: cfg.Path,
				Logger:   logger,
			}
			if cfg.Backend == factory.BackendRedis {
				redisCfg := redisstore.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			app, err = factory.New(factoryCfg)
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Store backend: file, memory, redis (env: DEVSTORE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&path, "path", "", "Document path for the file backend (env: DEVSTORE_PATH)")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", "", "Redis URL for the redis backend (env: DEVSTORE_REDIS_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
