package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inovacc/droneplan/internal/model"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved flight plans as JSON or YAML",
	Long: `Write every saved flight plan to stdout or a file.

The JSON form is the one the map stores: an array of
{"id", "title", "points": [[lat, lng], ...]} objects.

Examples:
  droneplan export
  droneplan export --format yaml
  droneplan export -o plans.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plans := planStorage().Load()

		if exportOutput == "" {
			return exportPlans(cmd.OutOrStdout(), plans, exportFormat)
		}

		path, err := expandPath(exportOutput)
		if err != nil {
			return err
		}

		return exportToFile(path, plans, exportFormat)
	},
}

// exportToFile encodes the plans before touching path, so a bad format
// leaves an existing file intact.
func exportToFile(path string, plans []model.Plan, format string) error {
	var buf bytes.Buffer
	if err := exportPlans(&buf, plans, format); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}

func exportPlans(w io.Writer, plans []model.Plan, format string) error {
	if plans == nil {
		plans = []model.Plan{}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(plans)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(plans); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
