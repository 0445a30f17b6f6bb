package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/droneplan/internal/logging"
	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/persist"
	"github.com/inovacc/droneplan/internal/render"
	"github.com/inovacc/droneplan/internal/render/rendertest"
	"github.com/inovacc/droneplan/internal/store"
)

type fakeForm struct {
	title   string
	visible bool
	focused bool
}

func (f *fakeForm) Title() string { return f.title }
func (f *fakeForm) Show()         { f.visible = true }
func (f *fakeForm) Focus()        { f.focused = true }

func (f *fakeForm) Hide() {
	f.title = ""
	f.visible = false
	f.focused = false
}

type alertLog struct {
	messages []string
}

func (a *alertLog) Alert(msg string) { a.messages = append(a.messages, msg) }

type sidebarLog struct {
	entries []model.Plan
}

func (s *sidebarLog) AppendEntry(p model.Plan) { s.entries = append(s.entries, p) }

type reloadCounter struct {
	count int
}

func (r *reloadCounter) Reload() { r.count++ }

// countingStore counts writes reaching the substrate.
type countingStore struct {
	store.Store
	writes int
}

func (s *countingStore) Set(key string, value []byte) error {
	s.writes++
	return s.Store.Set(key, value)
}

func (s *countingStore) Remove(key string) error {
	s.writes++
	return s.Store.Remove(key)
}

type harness struct {
	ctrl    *Controller
	store   *countingStore
	widget  *rendertest.Recorder
	form    *fakeForm
	alerts  *alertLog
	sidebar *sidebarLog
	reload  *reloadCounter
	clock   time.Time
}

func newHarness(t *testing.T, kv store.Store) *harness {
	t.Helper()

	if kv == nil {
		kv = store.NewMemory()
	}

	h := &harness{
		store:   &countingStore{Store: kv},
		widget:  rendertest.NewRecorder(),
		form:    &fakeForm{},
		alerts:  &alertLog{},
		sidebar: &sidebarLog{},
		reload:  &reloadCounter{},
		clock:   time.UnixMilli(1700000000000),
	}

	h.ctrl = New(Deps{
		Storage:  persist.NewAdapter(h.store, logging.Discard()),
		Renderer: render.NewRenderer(h.widget),
		Sidebar:  h.sidebar,
		Form:     h.form,
		Alerter:  h.alerts,
		Reloader: h.reload,
		Logger:   logging.Discard(),
		Zoom:     19,
		Now: func() time.Time {
			h.clock = h.clock.Add(time.Millisecond)
			return h.clock
		},
	})

	return h
}

// started returns a harness whose map was created at home.
func started(t *testing.T) *harness {
	t.Helper()

	h := newHarness(t, nil)
	h.ctrl.Start()
	h.ctrl.MapReady(model.Pt(44.4357786, 26.0323529))

	return h
}

func (h *harness) draft(t *testing.T, title string, pts ...model.Point) {
	t.Helper()

	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))
	h.form.title = title

	for _, p := range pts {
		require.NoError(t, h.ctrl.Dispatch(MapClicked{Point: p}))
	}
}

func TestSaveRouteA(t *testing.T) {
	h := started(t)

	h.draft(t, "Route A", model.Pt(44.43, 26.03), model.Pt(44.44, 26.04))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: h.form.title}))

	plans := h.ctrl.Plans()
	require.Len(t, plans, 1)
	assert.Equal(t, "Route A", plans[0].Title)
	assert.Equal(t, []model.Point{model.Pt(44.43, 26.03), model.Pt(44.44, 26.04)}, plans[0].Points)
	assert.Equal(t, int64(1700000000001), plans[0].ID)

	require.Len(t, h.sidebar.entries, 1)
	assert.Equal(t, "Route A", h.sidebar.entries[0].Title)
	assert.Equal(t, plans[0].ID, h.sidebar.entries[0].ID)

	assert.Equal(t, Idle, h.ctrl.State())
	assert.False(t, h.form.visible)
	assert.Empty(t, h.form.title)
	assert.Empty(t, h.alerts.messages)

	// persisted registry matches memory
	stored := persist.NewAdapter(h.store, logging.Discard()).Load()
	assert.Equal(t, plans, stored)
}

func TestSave_EmptyTitle(t *testing.T) {
	h := started(t)

	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))

	err := h.ctrl.Dispatch(Save{Title: ""})
	require.ErrorIs(t, err, ErrTitleRequired)

	assert.Equal(t, []string{msgSaveTitle}, h.alerts.messages)
	assert.Empty(t, h.ctrl.Plans())
	assert.Zero(t, h.store.writes)
	assert.Equal(t, Drafting, h.ctrl.State())
	assert.True(t, h.form.visible)
}

func TestSave_EmptyTitleKeepsDraft(t *testing.T) {
	h := started(t)

	h.draft(t, "Route", model.Pt(1, 1))
	h.form.title = ""

	require.ErrorIs(t, h.ctrl.Dispatch(Save{}), ErrTitleRequired)
	assert.Equal(t, []model.Point{model.Pt(1, 1)}, h.ctrl.Draft())
	assert.Len(t, h.widget.Markers(), 1)
}

func TestSave_NoPoints(t *testing.T) {
	h := started(t)

	h.draft(t, "Hover")
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "Hover"}))

	plans := h.ctrl.Plans()
	require.Len(t, plans, 1)
	assert.NotNil(t, plans[0].Points)
	assert.Empty(t, plans[0].Points)
}

func TestSave_OutsideDraftingIsIgnored(t *testing.T) {
	h := started(t)

	require.NoError(t, h.ctrl.Dispatch(Save{Title: "stray"}))
	assert.Empty(t, h.ctrl.Plans())
	assert.Zero(t, h.store.writes)
}

func TestSave_DuplicateTitles(t *testing.T) {
	h := started(t)

	for range 2 {
		h.draft(t, "Same", model.Pt(1, 1))
		require.NoError(t, h.ctrl.Dispatch(Save{Title: "Same"}))
	}

	plans := h.ctrl.Plans()
	require.Len(t, plans, 2)
	assert.NotEqual(t, plans[0].ID, plans[1].ID)
}

func TestMapClicked_RequiresTitle(t *testing.T) {
	h := started(t)

	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))

	err := h.ctrl.Dispatch(MapClicked{Point: model.Pt(1, 1)})
	require.ErrorIs(t, err, ErrTitleRequired)

	assert.Equal(t, []string{msgAddPointTitle}, h.alerts.messages)
	assert.Empty(t, h.ctrl.Draft())
	assert.Zero(t, h.widget.Overlays())
	assert.Equal(t, Drafting, h.ctrl.State())
}

func TestMapClicked_IdleWarns(t *testing.T) {
	h := started(t)

	err := h.ctrl.Dispatch(MapClicked{Point: model.Pt(1, 1)})
	require.ErrorIs(t, err, ErrTitleRequired)
	assert.Zero(t, h.widget.Overlays())
}

func TestMapClicked_WithoutMap(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Start()

	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))
	h.form.title = "Route"

	require.NoError(t, h.ctrl.Dispatch(MapClicked{Point: model.Pt(1, 1)}))
	assert.Empty(t, h.ctrl.Draft())
	assert.Zero(t, h.widget.Overlays())
}

func TestDraft_MarkersAndPath(t *testing.T) {
	h := started(t)

	pts := []model.Point{
		model.Pt(44.430, 26.030),
		model.Pt(44.431, 26.035),
		model.Pt(44.436, 26.031),
		model.Pt(44.432, 26.029),
	}

	h.draft(t, "Loop")

	for i, p := range pts {
		require.NoError(t, h.ctrl.Dispatch(MapClicked{Point: p}))

		assert.Len(t, h.widget.Markers(), i+1)

		lines := h.widget.Lines()
		require.NotEmpty(t, lines)
		assert.Equal(t, pts[:i+1], lines[len(lines)-1].Points)
		assert.Len(t, h.widget.Fits, i+1)
	}

	assert.Equal(t, pts, h.widget.MarkerPoints())
	assert.Equal(t, pts, h.ctrl.Draft())
}

func TestDraft_DuplicatePoints(t *testing.T) {
	h := started(t)

	p := model.Pt(44.43, 26.03)
	h.draft(t, "Twice", p, p)

	assert.Equal(t, []model.Point{p, p}, h.widget.MarkerPoints())

	lines := h.widget.Lines()
	assert.Equal(t, []model.Point{p, p}, lines[len(lines)-1].Points)
	assert.Empty(t, h.alerts.messages)
}

func TestOpenForm_ClearsDraftAndRendering(t *testing.T) {
	h := started(t)

	h.draft(t, "Old", model.Pt(1, 1), model.Pt(2, 2))
	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))

	assert.Empty(t, h.ctrl.Draft())
	assert.Zero(t, h.widget.Overlays())
	assert.True(t, h.form.visible)
	assert.True(t, h.form.focused)
	assert.Equal(t, Drafting, h.ctrl.State())
}

func TestSelectPlan(t *testing.T) {
	h := started(t)

	h.draft(t, "Route A", model.Pt(44.43, 26.03), model.Pt(44.44, 26.04))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "Route A"}))
	saved := h.ctrl.Plans()[0]

	// leave a residual unsaved draft on screen
	h.draft(t, "Scratch", model.Pt(10, 10), model.Pt(11, 11), model.Pt(12, 12))

	require.NoError(t, h.ctrl.Dispatch(SelectPlan{ID: saved.ID}))

	require.NotEmpty(t, h.widget.SetViews)
	assert.Equal(t, rendertest.View{Center: model.Pt(44.43, 26.03), Zoom: 19, Animated: true}, h.widget.SetViews[len(h.widget.SetViews)-1])

	assert.Equal(t, saved.Points, h.widget.MarkerPoints())

	for _, l := range h.widget.Lines() {
		assert.Subset(t, saved.Points, l.Points)
	}

	assert.Equal(t, Viewing, h.ctrl.State())
	assert.False(t, h.form.visible)
	assert.Empty(t, h.ctrl.Draft())
}

func TestSelectPlan_SwitchBetweenPlans(t *testing.T) {
	h := started(t)

	h.draft(t, "A", model.Pt(1, 1), model.Pt(1, 2))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "A"}))
	h.draft(t, "B", model.Pt(5, 5))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "B"}))

	plans := h.ctrl.Plans()

	require.NoError(t, h.ctrl.Dispatch(SelectPlan{ID: plans[0].ID}))
	require.NoError(t, h.ctrl.Dispatch(SelectPlan{ID: plans[1].ID}))

	assert.Equal(t, []model.Point{model.Pt(5, 5)}, h.widget.MarkerPoints())
	assert.Len(t, h.widget.Lines(), 1)
}

func TestSelectPlan_Empty(t *testing.T) {
	h := started(t)

	h.draft(t, "Nothing")
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "Nothing"}))
	h.draft(t, "Shown", model.Pt(3, 3))

	viewsBefore := len(h.widget.SetViews)
	overlaysBefore := h.widget.Overlays()

	err := h.ctrl.Dispatch(SelectPlan{ID: h.ctrl.Plans()[0].ID})
	require.ErrorIs(t, err, ErrEmptyPlan)

	assert.Equal(t, []string{msgEmptyPlan}, h.alerts.messages)
	assert.Len(t, h.widget.SetViews, viewsBefore)
	assert.Equal(t, overlaysBefore, h.widget.Overlays())
	assert.Equal(t, Drafting, h.ctrl.State())
}

func TestSelectPlan_Unknown(t *testing.T) {
	h := started(t)

	require.NoError(t, h.ctrl.Dispatch(SelectPlan{ID: 12345}))
	assert.Empty(t, h.alerts.messages)
	assert.Empty(t, h.widget.SetViews)
	assert.Equal(t, Idle, h.ctrl.State())
}

func TestStart_LoadsSidebarInStoredOrder(t *testing.T) {
	kv := store.NewMemory()
	persist.NewAdapter(kv, logging.Discard()).Save([]model.Plan{
		{ID: 1, Title: "one", Points: []model.Point{}},
		{ID: 2, Title: "two", Points: []model.Point{model.Pt(1, 1)}},
	})

	h := newHarness(t, kv)
	h.ctrl.Start()

	require.Len(t, h.sidebar.entries, 2)
	assert.Equal(t, "one", h.sidebar.entries[0].Title)
	assert.Equal(t, "two", h.sidebar.entries[1].Title)
	assert.Len(t, h.ctrl.Plans(), 2)
}

func TestStart_MalformedStorageIsSilent(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(persist.PlansKey, []byte("not json")))

	h := newHarness(t, kv)
	h.ctrl.Start()

	assert.Empty(t, h.ctrl.Plans())
	assert.Empty(t, h.sidebar.entries)
	assert.Empty(t, h.alerts.messages)
}

func TestReset(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv)
	h.ctrl.Start()
	h.ctrl.MapReady(model.Pt(0, 0))

	h.draft(t, "Route A", model.Pt(44.43, 26.03))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "Route A"}))
	h.draft(t, "Unsaved", model.Pt(1, 1))

	require.NoError(t, h.ctrl.Dispatch(Reset{}))

	assert.Empty(t, h.ctrl.Plans())
	assert.Equal(t, Idle, h.ctrl.State())
	assert.Equal(t, 1, h.reload.count)
	assert.Zero(t, h.widget.Overlays())

	_, err := kv.Get(persist.PlansKey)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// the reloaded application starts from empty storage
	next := newHarness(t, kv)
	next.ctrl.Start()
	assert.Empty(t, next.ctrl.Plans())
	assert.Empty(t, next.sidebar.entries)
}

func TestLocateFailed(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Start()

	err := h.ctrl.LocateFailed(errors.New("denied"))
	require.ErrorIs(t, err, ErrLocationUnavailable)

	assert.Equal(t, []string{msgNoLocation}, h.alerts.messages)
	assert.False(t, h.ctrl.HasMap())
	assert.False(t, h.widget.Created)
}

func TestMapReady_Once(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.Start()

	require.NoError(t, h.ctrl.Dispatch(OpenForm{}))
	h.form.title = "Early"
	require.NoError(t, h.ctrl.Dispatch(MapClicked{Point: model.Pt(5, 5)}))

	h.ctrl.MapReady(model.Pt(1, 2))
	assert.Empty(t, h.ctrl.Draft())
	assert.Zero(t, h.widget.Overlays())

	h.ctrl.MapReady(model.Pt(1, 2))
	h.ctrl.MapReady(model.Pt(3, 4))

	assert.True(t, h.ctrl.HasMap())
	assert.Equal(t, rendertest.View{Center: model.Pt(1, 2), Zoom: 19}, h.widget.View)
}

func TestSavedPlanIsIsolatedFromDraft(t *testing.T) {
	h := started(t)

	h.draft(t, "Fixed", model.Pt(1, 1))
	require.NoError(t, h.ctrl.Dispatch(Save{Title: "Fixed"}))

	h.draft(t, "Next", model.Pt(2, 2))

	assert.Equal(t, []model.Point{model.Pt(1, 1)}, h.ctrl.Plans()[0].Points)
}

func TestDispatch_NilIntent(t *testing.T) {
	h := started(t)

	assert.Error(t, h.ctrl.Dispatch(nil))
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Drafting, "drafting"},
		{Viewing, "viewing"},
		{State(9), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
