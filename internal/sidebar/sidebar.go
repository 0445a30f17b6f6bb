// Package sidebar renders the list of saved plans next to the map.
package sidebar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/droneplan/internal/model"
)

type entry struct {
	id     int64
	title  string
	points int
}

func (e entry) Title() string { return e.title }

func (e entry) Description() string {
	created := model.Plan{ID: e.id}.CreatedAt().Format("2006-01-02 15:04")
	return fmt.Sprintf("%d points | %s", e.points, created)
}

func (e entry) FilterValue() string { return e.title }

// Panel holds one entry per saved plan, newest first, right below the form.
type Panel struct {
	list     list.Model
	delegate list.DefaultDelegate
}

func New() *Panel {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(lipgloss.Color("205")).
		BorderForeground(lipgloss.Color("205"))
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(lipgloss.Color("168")).
		BorderForeground(lipgloss.Color("205"))

	l := list.New(nil, d, 0, 0)
	l.Title = "Flight Plans"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return &Panel{list: l, delegate: d}
}

// AppendEntry inserts the plan at the top of the panel.
func (p *Panel) AppendEntry(plan model.Plan) {
	p.list.InsertItem(0, entry{id: plan.ID, title: plan.Title, points: len(plan.Points)})
	p.list.Select(0)
}

// Selected returns the id of the highlighted entry.
func (p *Panel) Selected() (int64, bool) {
	e, ok := p.list.SelectedItem().(entry)
	if !ok {
		return 0, false
	}

	return e.id, true
}

// Entry reports whether an entry tagged with id exists, and its title.
func (p *Panel) Entry(id int64) (string, bool) {
	for _, it := range p.list.Items() {
		if e := it.(entry); e.id == id {
			return e.title, true
		}
	}

	return "", false
}

// IDs lists the entry ids from top to bottom.
func (p *Panel) IDs() []int64 {
	items := p.list.Items()

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.(entry).id
	}

	return ids
}

// TitleHeight is the number of lines above the first entry.
func (p *Panel) TitleHeight() int {
	return lipgloss.Height(p.list.Styles.TitleBar.Render(p.list.Styles.Title.Render(p.list.Title)))
}

// EntryAt selects the entry drawn on line y of the panel and returns its id.
// Lines of the title, the gaps between entries and the empty space below
// them hold no entry.
func (p *Panel) EntryAt(y int) (int64, bool) {
	row := y - p.TitleHeight()
	if row < 0 {
		return 0, false
	}

	itemH := p.delegate.Height() + p.delegate.Spacing()
	if row%itemH >= p.delegate.Height() {
		return 0, false
	}

	items := p.list.Items()

	i := row / itemH
	if i >= p.list.Paginator.ItemsOnPage(len(items)) {
		return 0, false
	}

	idx := p.list.Paginator.Page*p.list.Paginator.PerPage + i
	if idx >= len(items) {
		return 0, false
	}

	p.list.Select(idx)

	return items[idx].(entry).id, true
}

func (p *Panel) Len() int {
	return len(p.list.Items())
}

func (p *Panel) SetSize(w, h int) {
	p.list.SetSize(w, h)
}

// Update forwards navigation keys to the list.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)

	return cmd
}

func (p *Panel) View() string {
	return p.list.View()
}
