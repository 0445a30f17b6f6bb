package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/cli"
	"github.com/inovacc/droneplan/internal/geo"
	"github.com/inovacc/droneplan/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the flight plan map (default command)",
	Long: `Open the interactive map.

Keys on the map:
  a          start a new plan and focus the title field
  arrows     move the crosshair (the map pans at the edges)
  space      add a point at the crosshair (mouse clicks work too)
  s          save the plan
  + / -      zoom
  tab        move focus between the map, the title field and the plan list
  D          delete every saved plan
  q          quit`,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runMap wires the store, the start position lookup and the terminal
// surfaces together and runs the program until the user quits.
func runMap(cmd *cobra.Command, _ []string) error {
	cfg, err := store.GetConfig(db)
	if err != nil {
		return err
	}

	app := cli.NewApp(cmd.Context(), cli.Options{
		Storage: planStorage(),
		Locator: geo.New(*cfg),
		Logger:  logger,
		Zoom:    cfg.ZoomLevel,
	})

	logger.Info("starting map", "locator", cfg.Locator, "zoom", cfg.ZoomLevel)

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			logger.Info("map closed by signal")
			return nil
		}

		return fmt.Errorf("map program failed: %w", err)
	}

	return nil
}
