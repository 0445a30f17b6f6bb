package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/droneplan/internal/persist"
)

var resetYes bool

var errNeedsConfirmation = errors.New("stdin is not a terminal; pass --yes to delete all plans")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved flight plan",
	Long: `Delete every saved flight plan. The configuration is kept.

Asks for confirmation unless --yes is given. Without a terminal to ask on,
--yes is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := func() (bool, error) {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return false, errNeedsConfirmation
			}

			return promptConfirm(cmd.OutOrStdout(), os.Stdin, "Delete all flight plans? [y/N]: "), nil
		}

		return resetPlans(cmd.OutOrStdout(), planStorage(), resetYes, confirm)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip confirmation prompt")
}

func resetPlans(w io.Writer, plans *persist.Adapter, yes bool, confirm func() (bool, error)) error {
	n := len(plans.Load())
	if n == 0 {
		_, _ = fmt.Fprintln(w, "No flight plans to delete.")
		return nil
	}

	if !yes {
		ok, err := confirm()
		if err != nil {
			return err
		}

		if !ok {
			_, _ = fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	plans.Reset()

	_, _ = fmt.Fprintf(w, "Deleted %d flight plan(s).\n", n)

	return nil
}
