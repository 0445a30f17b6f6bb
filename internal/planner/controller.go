package planner

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/render"
)

// Storage persists the whole registry under one key.
type Storage interface {
	Load() []model.Plan
	Save(plans []model.Plan)
	Reset()
}

// MapRenderer draws points and paths on the map.
type MapRenderer interface {
	CreateView(center model.Point, zoom int)
	ShowMarker(p model.Point) render.Handle
	ShowPath(points []model.Point) render.Handle
	RemoveAll(markers, lines *render.HandleList)
	CenterOn(p model.Point, zoom int, animated bool)
	FitToBounds(line render.Handle)
}

// Sidebar lists saved plans.
type Sidebar interface {
	AppendEntry(plan model.Plan)
}

// Form is the plan title input.
type Form interface {
	Title() string
	Show()
	// Hide clears the title and hides the form.
	Hide()
	Focus()
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// Reloader restarts the application from persisted state.
type Reloader interface {
	Reload()
}

// Deps are the collaborators injected into a Controller.
type Deps struct {
	Storage  Storage
	Renderer MapRenderer
	Sidebar  Sidebar
	Form     Form
	Alerter  Alerter
	Reloader Reloader
	Logger   *slog.Logger

	// Zoom is used when the map is created and when a plan is selected.
	Zoom int

	// Now stamps new plans. Defaults to time.Now.
	Now func() time.Time
}

type Controller struct {
	storage  Storage
	renderer MapRenderer
	sidebar  Sidebar
	form     Form
	alerts   Alerter
	reloader Reloader
	logger   *slog.Logger
	zoom     int
	now      func() time.Time

	state  State
	hasMap bool
	plans  []model.Plan

	// draft holds the points of the plan being drawn, drawn the points
	// currently shown as a path (the draft or a selected plan).
	draft []model.Point
	drawn []model.Point

	markers render.HandleList
	lines   render.HandleList
}

func New(d Deps) *Controller {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		storage:  d.Storage,
		renderer: d.Renderer,
		sidebar:  d.Sidebar,
		form:     d.Form,
		alerts:   d.Alerter,
		reloader: d.Reloader,
		logger:   d.Logger,
		zoom:     d.Zoom,
		now:      now,
	}
}

// Start loads the saved plans and lists them in the sidebar, in stored order.
func (c *Controller) Start() {
	c.plans = c.storage.Load()
	for _, p := range c.plans {
		c.sidebar.AppendEntry(p)
	}

	c.logger.Info("plans loaded", "count", len(c.plans))
}

// MapReady creates the map view once the start position is known. Map clicks
// are ignored until then, so there is never a draft to draw here.
func (c *Controller) MapReady(center model.Point) {
	if c.hasMap {
		return
	}

	c.renderer.CreateView(center, c.zoom)
	c.hasMap = true

	c.logger.Info("map created", "lat", center.Lat, "lng", center.Lng, "zoom", c.zoom)
}

// LocateFailed reports that the start position could not be resolved. The
// map is not created, so map clicks and plan selection stay inert.
func (c *Controller) LocateFailed(err error) error {
	c.logger.Warn("start position unavailable", "error", err)
	c.alerts.Alert(msgNoLocation)

	return fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
}

// Dispatch applies a user intent. Warnings have already been shown to the
// user when an error is returned; the error only tells the caller that
// nothing changed.
func (c *Controller) Dispatch(in Intent) error {
	switch in := in.(type) {
	case OpenForm:
		c.openForm()
		return nil
	case MapClicked:
		return c.addPoint(in.Point)
	case Save:
		_, err := c.save(in.Title)
		return err
	case SelectPlan:
		return c.selectPlan(in.ID)
	case Reset:
		c.reset()
		return nil
	default:
		return fmt.Errorf("unknown intent %T", in)
	}
}

func (c *Controller) openForm() {
	c.draft = nil
	c.clearRendered()
	c.state = Drafting
	c.form.Show()
	c.form.Focus()

	c.logger.Debug("form opened")
}

func (c *Controller) addPoint(p model.Point) error {
	if !c.hasMap {
		return nil
	}

	if c.form.Title() == "" {
		return c.warn(ErrTitleRequired, msgAddPointTitle)
	}

	if c.state != Drafting {
		return nil
	}

	c.draft = append(c.draft, p)
	c.drawPoint(p)

	c.logger.Debug("point added", "lat", p.Lat, "lng", p.Lng, "points", len(c.draft))

	return nil
}

func (c *Controller) save(title string) (model.Plan, error) {
	if title == "" {
		return model.Plan{}, c.warn(ErrTitleRequired, msgSaveTitle)
	}

	if c.state != Drafting {
		return model.Plan{}, nil
	}

	plan := model.NewPlan(title, c.draft, c.now())
	c.plans = append(c.plans, plan)
	c.storage.Save(c.plans)
	c.form.Hide()
	c.sidebar.AppendEntry(plan)

	c.draft = nil
	c.state = Idle

	c.logger.Info("plan saved", "id", plan.ID, "title", plan.Title, "points", len(plan.Points))

	return plan, nil
}

func (c *Controller) selectPlan(id int64) error {
	plan, ok := model.FindPlan(c.plans, id)
	if !ok {
		c.logger.Debug("unknown plan selected", "id", id)
		return nil
	}

	first, ok := plan.First()
	if !ok {
		return c.warn(ErrEmptyPlan, msgEmptyPlan)
	}

	if !c.hasMap {
		return nil
	}

	c.renderer.CenterOn(first, c.zoom, true)
	c.clearRendered()

	if c.state == Drafting {
		c.form.Hide()
	}

	c.draft = nil
	for _, p := range plan.Points {
		c.drawPoint(p)
	}

	c.state = Viewing

	c.logger.Debug("plan shown", "id", plan.ID, "points", len(plan.Points))

	return nil
}

func (c *Controller) reset() {
	c.storage.Reset()

	c.plans = nil
	c.draft = nil
	c.clearRendered()
	c.form.Hide()
	c.state = Idle

	c.logger.Info("all plans deleted")
	c.reloader.Reload()
}

// drawPoint renders a marker at p and a new path through every drawn point.
func (c *Controller) drawPoint(p model.Point) {
	c.markers.Add(c.renderer.ShowMarker(p))

	c.drawn = append(c.drawn, p)
	line := c.renderer.ShowPath(c.drawn)
	c.lines.Add(line)
	c.renderer.FitToBounds(line)
}

func (c *Controller) clearRendered() {
	c.renderer.RemoveAll(&c.markers, &c.lines)
	c.drawn = nil
}

func (c *Controller) warn(err error, msg string) error {
	c.alerts.Alert(msg)
	c.logger.Debug("warning shown", "error", err)

	return err
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// HasMap reports whether the map view was created.
func (c *Controller) HasMap() bool {
	return c.hasMap
}

// Plans returns a copy of the registry.
func (c *Controller) Plans() []model.Plan {
	return slices.Clone(c.plans)
}

// Draft returns a copy of the points drawn for the unsaved plan.
func (c *Controller) Draft() []model.Point {
	return slices.Clone(c.draft)
}
