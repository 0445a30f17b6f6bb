package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/application"
	"github.com/inovacc/droneplan/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved flight plans",
	Long:    `List every saved flight plan in the order it was saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPlans(cmd.OutOrStdout(), planStorage().Load())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printPlans(out io.Writer, plans []model.Plan) error {
	if len(plans) == 0 {
		printEmptyResult(out, "flight plans", application.AppName)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tCREATED\tPOINTS\tTITLE")
	_, _ = fmt.Fprintln(w, "--\t-------\t------\t-----")

	for _, p := range plans {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			p.ID,
			formatCreated(p),
			len(p.Points),
			truncateString(p.Title, 40),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
