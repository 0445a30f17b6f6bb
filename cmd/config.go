package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/application"
	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/params"
	"github.com/inovacc/droneplan/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage droneplan configuration",
	Long: `Commands for managing droneplan configuration.

Available Commands:
  show      Show the current configuration
  set       Change one setting
  reset     Restore the defaults
  path      Show where data and logs are kept

Keys:
  zoom          zoom level for the first view and shown plans (0-22)
  locator       how the start position is found: ip or fixed
  locator.url   endpoint of the ip locator
  home.lat      latitude used by the fixed locator
  home.lng      longitude used by the fixed locator`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.GetConfig(db)
		if err != nil {
			return err
		}

		printConfig(cmd.OutOrStdout(), cfg)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: model.ConfigKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.GetConfig(db)
		if err != nil {
			return err
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}

		if err := store.SaveConfig(db, cfg); err != nil {
			return err
		}

		logger.Info("config changed", "key", args[0], "value", args[1])
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])

		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()
		if err := store.SaveConfig(db, &cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where data and logs are kept",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := params.AppdataDir()
		if err != nil {
			return err
		}

		dbFile, err := storePath(backend, dbPath)
		if err != nil {
			return err
		}

		if dbFile == "" {
			dbFile = "(in memory)"
		}

		printInfoBox(cmd.OutOrStdout(), application.AppName+" paths", map[string]string{
			"Data":     dir,
			"Database": dbFile,
			"Backend":  backend.String(),
		}, []string{"Data", "Database", "Backend"})

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configPathCmd)
}

func printConfig(w io.Writer, cfg *model.Config) {
	keys := model.ConfigKeys()
	items := make(map[string]string, len(keys))

	for _, k := range keys {
		v, _ := cfg.Get(k)
		items[k] = v
	}

	printInfoBox(w, "Configuration", items, keys)
}
