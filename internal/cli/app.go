package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/droneplan/internal/geo"
	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/planner"
	"github.com/inovacc/droneplan/internal/render"
	"github.com/inovacc/droneplan/internal/sidebar"
)

const (
	sidebarWidth = 34
	headerHeight = 1
	footerHeight = 2
)

type focus int

const (
	focusMap focus = iota
	focusForm
	focusSidebar
)

// locatedMsg carries the start position. gen ties it to the build that asked
// for it, so a lookup started before a reload is dropped.
type locatedMsg struct {
	gen uint64
	p   model.Point
	err error
}

type Options struct {
	Storage planner.Storage
	Locator geo.Locator
	Logger  *slog.Logger
	Zoom    int

	// Now stamps new plans. Defaults to time.Now.
	Now func() time.Time
}

// App is the Bubble Tea program: a sidebar with the form and saved plans on
// the left, the map on the right.
type App struct {
	ctx     context.Context
	storage planner.Storage
	locator geo.Locator
	logger  *slog.Logger
	zoom    int
	now     func() time.Time

	gen       uint64
	reloading bool

	ctrl   *planner.Controller
	mapw   *MapWidget
	form   *Form
	panel  *sidebar.Panel
	alerts *Alerts

	keys  keyMap
	help  help.Model
	focus focus

	width  int
	height int
}

var _ planner.Reloader = (*App)(nil)

func NewApp(ctx context.Context, opts Options) *App {
	a := &App{
		ctx:     ctx,
		storage: opts.Storage,
		locator: opts.Locator,
		logger:  opts.Logger,
		zoom:    opts.Zoom,
		now:     opts.Now,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   sidebarWidth + 1 + defaultMapWidth,
		height:  headerHeight + defaultMapHeight + footerHeight,
	}

	a.build()

	return a
}

// build discards every surface and the controller and starts over from
// storage.
func (a *App) build() {
	a.gen++

	a.mapw = NewMapWidget(a.zoom)
	a.form = NewForm()
	a.panel = sidebar.New()
	a.alerts = &Alerts{}
	a.focus = focusMap

	a.ctrl = planner.New(planner.Deps{
		Storage:  a.storage,
		Renderer: render.NewRenderer(a.mapw),
		Sidebar:  a.panel,
		Form:     a.form,
		Alerter:  a.alerts,
		Reloader: a,
		Logger:   a.logger,
		Zoom:     a.zoom,
		Now:      a.now,
	})
	a.ctrl.Start()

	a.layout()
}

// Reload is called by the controller after a reset. The rebuild happens once
// the current dispatch has returned.
func (a *App) Reload() {
	a.reloading = true
}

func (a *App) Init() tea.Cmd {
	return a.locate()
}

func (a *App) locate() tea.Cmd {
	gen, ctx, loc := a.gen, a.ctx, a.locator

	return func() tea.Msg {
		p, err := loc.Locate(ctx)
		return locatedMsg{gen: gen, p: p, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()

		return a, nil

	case locatedMsg:
		if msg.gen != a.gen {
			return a, nil
		}

		if msg.err != nil {
			_ = a.ctrl.LocateFailed(msg.err)
			a.mapw.SetPlaceholder("Position unavailable")

			return a, nil
		}

		a.ctrl.MapReady(msg.p)

		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case tea.MouseMsg:
		return a.updateMouse(msg)
	}

	if a.focus == focusForm {
		return a, a.form.Update(msg)
	}

	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	if a.alerts.Active() {
		if key.Matches(msg, a.keys.Dismiss) {
			a.alerts.Dismiss()
		}

		return a, nil
	}

	if key.Matches(msg, a.keys.Focus) {
		a.cycleFocus()
		return a, nil
	}

	switch a.focus {
	case focusForm:
		return a.updateForm(msg)
	case focusSidebar:
		return a.updateSidebar(msg)
	default:
		return a.updateMap(msg)
	}
}

// updateCommon handles the keys shared by the map and the sidebar.
func (a *App) updateCommon(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, a.keys.Add):
		return a.dispatch(planner.OpenForm{}), true
	case key.Matches(msg, a.keys.Save):
		return a.dispatch(planner.Save{Title: a.form.Title()}), true
	case key.Matches(msg, a.keys.DeleteAll):
		return a.dispatch(planner.Reset{}), true
	}

	return nil, false
}

func (a *App) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := a.updateCommon(msg); ok {
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Click):
		return a, a.click()
	case key.Matches(msg, a.keys.Up):
		a.mapw.MoveCursor(0, -1)
	case key.Matches(msg, a.keys.Down):
		a.mapw.MoveCursor(0, 1)
	case key.Matches(msg, a.keys.Left):
		a.mapw.MoveCursor(-1, 0)
	case key.Matches(msg, a.keys.Right):
		a.mapw.MoveCursor(1, 0)
	case key.Matches(msg, a.keys.ZoomIn):
		a.mapw.ZoomBy(1)
	case key.Matches(msg, a.keys.ZoomOut):
		a.mapw.ZoomBy(-1)
	}

	return a, nil
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		return a, a.dispatch(planner.Save{Title: a.form.Title()})
	case key.Matches(msg, a.keys.Back):
		a.setFocus(focusMap)
		return a, nil
	}

	return a, a.form.Update(msg)
}

func (a *App) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Click) {
		id, ok := a.panel.Selected()
		if !ok {
			return a, nil
		}

		return a, a.dispatch(planner.SelectPlan{ID: id})
	}

	if key.Matches(msg, a.keys.Back) {
		a.setFocus(focusMap)
		return a, nil
	}

	if cmd, ok := a.updateCommon(msg); ok {
		return a, cmd
	}

	return a, a.panel.Update(msg)
}

func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.alerts.Active() {
		return a, nil
	}

	x, y := msg.X-(sidebarWidth+1), msg.Y-headerHeight

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.mapw.ZoomBy(1)
	case tea.MouseButtonWheelDown:
		a.mapw.ZoomBy(-1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		if msg.X < sidebarWidth {
			return a, a.clickSidebar(y)
		}

		if !a.mapw.SetCursor(x, y) {
			return a, nil
		}

		a.setFocus(focusMap)

		return a, a.click()
	}

	return a, nil
}

// clickSidebar selects the plan drawn on line y of the sidebar.
func (a *App) clickSidebar(y int) tea.Cmd {
	if a.form.Visible() {
		y -= formHeight
	}

	id, ok := a.panel.EntryAt(y)
	if !ok {
		return nil
	}

	a.setFocus(focusSidebar)

	return a.dispatch(planner.SelectPlan{ID: id})
}

// click sends a map click at the crosshair.
func (a *App) click() tea.Cmd {
	return a.dispatch(planner.MapClicked{Point: a.mapw.CursorPoint()})
}

// dispatch forwards an intent to the controller and brings the surfaces in
// line with the result. A reset rebuilds everything and asks for the start
// position again.
func (a *App) dispatch(in planner.Intent) tea.Cmd {
	if err := a.ctrl.Dispatch(in); err != nil {
		a.logger.Debug("intent rejected", "intent", fmt.Sprintf("%T", in), "error", err)
	}

	if a.reloading {
		a.reloading = false
		a.build()

		return a.locate()
	}

	switch {
	case a.form.Visible() && a.ctrl.State() == planner.Drafting && isOpenForm(in):
		a.setFocus(focusForm)
	case !a.form.Visible() && a.focus == focusForm:
		a.setFocus(focusMap)
	}

	a.layout()

	return nil
}

func isOpenForm(in planner.Intent) bool {
	_, ok := in.(planner.OpenForm)
	return ok
}

func (a *App) cycleFocus() {
	next := (a.focus + 1) % 3
	if next == focusForm && !a.form.Visible() {
		next = focusSidebar
	}

	a.setFocus(next)
}

func (a *App) setFocus(f focus) {
	a.focus = f

	if f == focusForm {
		a.form.Focus()
	} else {
		a.form.Blur()
	}
}

func (a *App) bodyHeight() int {
	return max(4, a.height-headerHeight-footerHeight)
}

func (a *App) layout() {
	body := a.bodyHeight()

	a.mapw.SetSize(max(10, a.width-sidebarWidth-1), body)
	a.form.SetWidth(sidebarWidth)

	listH := body
	if a.form.Visible() {
		listH -= formHeight
	}

	a.panel.SetSize(sidebarWidth, max(1, listH))
}

func (a *App) View() string {
	body := a.bodyHeight()

	var main string
	if a.alerts.Active() {
		main = a.alerts.View(a.width, body)
	} else {
		left := sidebarStyle.Width(sidebarWidth).Height(body).
			Render(a.form.View() + a.panel.View())
		main = lipgloss.JoinHorizontal(lipgloss.Top, left, a.mapw.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.header(), main, a.footer())
}

func (a *App) header() string {
	status := a.ctrl.State().String()
	if a.mapw.Created() {
		c := a.mapw.CursorPoint()
		status = fmt.Sprintf("%s · %.6f, %.6f · z%d", status, c.Lat, c.Lng, a.mapw.Zoom())
	}

	return titleStyle.Render("droneplan") + "  " + stateStyle.Render(status)
}

func (a *App) footer() string {
	var bindings []key.Binding

	switch a.focus {
	case focusForm:
		bindings = []key.Binding{a.keys.Submit, a.keys.Back, a.keys.Focus}
	case focusSidebar:
		bindings = []key.Binding{a.keys.Click, a.keys.Up, a.keys.Down, a.keys.Add, a.keys.Back, a.keys.Quit}
	default:
		bindings = a.keys.ShortHelp()
	}

	return helpStyle.Render(a.mapw.Legend()) + "\n" + a.help.ShortHelpView(bindings)
}

// Controller exposes the state machine behind the program.
func (a *App) Controller() *planner.Controller {
	return a.ctrl
}

func (a *App) Map() *MapWidget {
	return a.mapw
}

func (a *App) Form() *Form {
	return a.form
}

func (a *App) Panel() *sidebar.Panel {
	return a.panel
}

func (a *App) Alerts() *Alerts {
	return a.alerts
}
