package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Save      key.Binding
	DeleteAll key.Binding
	Click     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Focus     key.Binding
	Back      key.Binding
	Submit    key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add plan"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click/select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "zoom"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to map"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Click, k.Save, k.ZoomIn, k.Focus, k.DeleteAll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Save, k.DeleteAll},
		{k.Click, k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.Focus, k.Back, k.Quit},
	}
}
