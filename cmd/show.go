package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the points of a saved flight plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlanID(args[0])
		if err != nil {
			return err
		}

		plan, ok := model.FindPlan(planStorage().Load(), id)
		if !ok {
			return fmt.Errorf("no flight plan with id %d", id)
		}

		printPlan(cmd.OutOrStdout(), plan)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func printPlan(w io.Writer, p model.Plan) {
	items := map[string]string{
		"Title":   p.Title,
		"ID":      strconv.FormatInt(p.ID, 10),
		"Created": formatCreated(p),
		"Points":  strconv.Itoa(len(p.Points)),
	}

	printBoxHeader(w, "Flight Plan")

	for _, k := range []string{"Title", "ID", "Created", "Points"} {
		printBoxLine(w, k, items[k])
	}

	for i, pt := range p.Points {
		printBoxLine(w, fmt.Sprintf("%3d", i+1), pt.String())
	}

	printBoxFooter(w)
}
