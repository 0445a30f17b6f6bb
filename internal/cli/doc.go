// Package cli provides the terminal user interface of droneplan.
//
// The package uses [Bubbletea] for the program loop and [Lipgloss] for
// styling. Every surface the flight plan controller talks to has a terminal
// implementation here:
//
//   - MapWidget: a braille canvas in Web Mercator with a crosshair cursor
//   - Form: the plan title input shown above the sidebar
//   - Alerts: blocking messages that hold the keyboard until dismissed
//   - App: the program that lays the surfaces out and turns keys and
//     mouse clicks into controller intents
//
// # Keys
//
// On the map, arrows move the crosshair (panning at the edges), space or
// enter clicks, +/- zoom. "a" opens a new plan, "s" saves it, "D" deletes
// every plan. Tab cycles focus between the map, the form and the sidebar;
// enter on a sidebar entry shows that plan.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
