package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/application"
	"github.com/inovacc/droneplan/internal/store"
)

var (
	backend   = store.BackendBolt
	dbPath    string
	logFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Draw, save and recall drone flight plans on a terminal map",
	Long: `Droneplan records flight plans as ordered lists of map points.

Run it without a command to open the map: press "a" to start a plan, type a
title, click points on the map and press "s" to save. Saved plans are listed
in the sidebar and can be shown again at any time.`,
	Version:           application.Version,
	SilenceUsage:      true,
	PersistentPreRunE: openEnv,
	RunE:              runMap,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnFinalize(closeEnv)

	f := rootCmd.PersistentFlags()
	f.Var(&backend, "backend", "Storage backend: bolt, sqlite or memory")
	f.StringVar(&dbPath, "db", "", "Database file (default: in the data directory)")
	f.StringVar(&logFile, "log-file", "", "Log file (default: in the data directory)")
	f.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}
