package cli

import (
	"github.com/charmbracelet/lipgloss"
)

const alertWidth = 48

// Alerts queues blocking messages. While one is active the program ignores
// every key except the dismiss keys.
type Alerts struct {
	queue []string
}

func (a *Alerts) Alert(msg string) {
	a.queue = append(a.queue, msg)
}

func (a *Alerts) Active() bool {
	return len(a.queue) > 0
}

// Current is the message on screen.
func (a *Alerts) Current() string {
	if len(a.queue) == 0 {
		return ""
	}

	return a.queue[0]
}

func (a *Alerts) Dismiss() {
	if len(a.queue) > 0 {
		a.queue = a.queue[1:]
	}
}

// View draws the active alert centered in a w×h box.
func (a *Alerts) View(w, h int) string {
	body := a.Current() + "\n\n" + helpStyle.Render("press enter to continue")
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, alertStyle.Render(body))
}
