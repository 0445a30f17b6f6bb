package cli

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formHeight is the number of lines the form takes while visible.
const formHeight = 3

// Form is the plan title field shown above the sidebar while a plan is drawn.
type Form struct {
	input   textinput.Model
	visible bool
}

func NewForm() *Form {
	ti := textinput.New()
	ti.Placeholder = "Plan title"
	ti.CharLimit = 64
	ti.Prompt = "› "
	ti.PromptStyle = activeStyle
	ti.Cursor.Style = activeStyle

	return &Form{input: ti}
}

func (f *Form) Title() string {
	return f.input.Value()
}

func (f *Form) SetTitle(s string) {
	f.input.SetValue(s)
}

func (f *Form) Show() {
	f.visible = true
}

// Hide clears the title and hides the form.
func (f *Form) Hide() {
	f.input.Reset()
	f.input.Blur()
	f.visible = false
}

func (f *Form) Focus() {
	f.input.Focus()
}

func (f *Form) Blur() {
	f.input.Blur()
}

func (f *Form) Focused() bool {
	return f.input.Focused()
}

func (f *Form) Visible() bool {
	return f.visible
}

func (f *Form) SetWidth(w int) {
	f.input.Width = max(1, w-len([]rune(f.input.Prompt))-1)
}

func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	return cmd
}

func (f *Form) View() string {
	if !f.visible {
		return ""
	}

	return labelStyle.Render("New plan") + "\n" + f.input.View() + "\n\n"
}
