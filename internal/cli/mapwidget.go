package cli

import (
	"fmt"
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/render"
)

const (
	markerGlyph = '●'
	cursorGlyph = '┼'

	// fitPadding keeps fitted paths this many dots away from the edges
	fitPadding = 4

	defaultMapWidth  = 80
	defaultMapHeight = 24
)

// MapWidget is the terminal map engine. It implements render.Widget on a
// braille canvas using Web Mercator, and owns a crosshair cursor the user
// moves to click on the map.
type MapWidget struct {
	created bool
	center  model.Point
	zoom    int
	maxZoom int

	width  int
	height int

	overlays map[render.Handle]render.Overlay
	order    []render.Handle
	next     render.Handle
	popup    render.Handle

	cursorX int
	cursorY int

	placeholder string
}

var _ render.Widget = (*MapWidget)(nil)

func NewMapWidget(maxZoom int) *MapWidget {
	m := &MapWidget{
		maxZoom:     maxZoom,
		overlays:    make(map[render.Handle]render.Overlay),
		placeholder: "Locating…",
	}
	m.SetSize(defaultMapWidth, defaultMapHeight)

	return m
}

// SetSize resizes the canvas in cells and keeps the cursor inside it.
func (m *MapWidget) SetSize(w, h int) {
	first := m.width == 0 && m.height == 0

	m.width = max(2, w)
	m.height = max(2, h)

	if first || m.cursorX >= m.width || m.cursorY >= m.height {
		m.CenterCursor()
	}
}

func (m *MapWidget) Size() (int, int) {
	return m.width, m.height
}

// CenterCursor moves the crosshair to the middle of the canvas.
func (m *MapWidget) CenterCursor() {
	m.cursorX = m.width / 2
	m.cursorY = m.height / 2
}

func (m *MapWidget) SetPlaceholder(s string) {
	m.placeholder = s
}

func (m *MapWidget) Created() bool {
	return m.created
}

func (m *MapWidget) Center() model.Point {
	return m.center
}

func (m *MapWidget) Zoom() int {
	return m.zoom
}

func (m *MapWidget) CreateView(center model.Point, zoom int) {
	m.created = true
	m.center = center
	m.zoom = m.clampZoom(zoom)
}

func (m *MapWidget) AddOverlay(o render.Overlay) render.Handle {
	m.next++
	m.overlays[m.next] = o
	m.order = append(m.order, m.next)

	// opening a popup closes the previous one
	if mk, ok := o.(render.Marker); ok && mk.OpenPopup && mk.Popup != "" {
		m.popup = m.next
	}

	return m.next
}

func (m *MapWidget) RemoveOverlay(h render.Handle) {
	if _, ok := m.overlays[h]; !ok {
		return
	}

	delete(m.overlays, h)
	m.order = slices.DeleteFunc(m.order, func(x render.Handle) bool { return x == h })

	if m.popup == h {
		m.popup = 0
	}
}

// Overlays is the number of overlays on the map.
func (m *MapWidget) Overlays() int {
	return len(m.overlays)
}

// FitBounds picks the deepest zoom, up to maxZoom, at which b fits the canvas
// and centers the view on it.
func (m *MapWidget) FitBounds(b render.Bounds) {
	if !b.IsValid() {
		return
	}

	dotsW := float64(m.width*2 - 2*fitPadding)
	dotsH := float64(m.height*4 - 2*fitPadding)

	zoom := 0
	for z := m.maxZoom; z >= 0; z-- {
		x0, y0 := project(b.SouthWest, z)
		x1, y1 := project(b.NorthEast, z)

		if x1-x0 <= dotsW && y0-y1 <= dotsH {
			zoom = z
			break
		}
	}

	x0, y0 := project(b.SouthWest, zoom)
	x1, y1 := project(b.NorthEast, zoom)

	m.zoom = zoom
	m.center = unproject((x0+x1)/2, (y0+y1)/2, zoom)
}

// SetView moves the view. The canvas has no animation, so animated views
// jump like plain ones.
func (m *MapWidget) SetView(center model.Point, zoom int, _ bool) {
	m.center = center
	m.zoom = m.clampZoom(zoom)
}

// ZoomBy changes the zoom level around the current center.
func (m *MapWidget) ZoomBy(delta int) {
	m.zoom = m.clampZoom(m.zoom + delta)
}

func (m *MapWidget) clampZoom(z int) int {
	return max(0, min(model.MaxZoom, z))
}

// MoveCursor moves the crosshair by whole cells, panning the map when it
// would leave the canvas.
func (m *MapWidget) MoveCursor(dx, dy int) {
	nx, ny := m.cursorX+dx, m.cursorY+dy

	panX, panY := 0, 0
	if nx < 0 || nx >= m.width {
		panX = dx
		nx = m.cursorX
	}

	if ny < 0 || ny >= m.height {
		panY = dy
		ny = m.cursorY
	}

	m.cursorX, m.cursorY = nx, ny

	if panX != 0 || panY != 0 {
		m.pan(panX*2, panY*4)
	}
}

func (m *MapWidget) pan(dotsX, dotsY int) {
	x, y := project(m.center, m.zoom)
	m.center = unproject(x+float64(dotsX), y+float64(dotsY), m.zoom)
}

// SetCursor places the crosshair on a cell. It reports false when the cell
// is outside the canvas.
func (m *MapWidget) SetCursor(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}

	m.cursorX, m.cursorY = x, y

	return true
}

// CursorPoint is the coordinate under the crosshair.
func (m *MapWidget) CursorPoint() model.Point {
	return m.PointAt(m.cursorX, m.cursorY)
}

// PointAt is the coordinate at the middle of a cell.
func (m *MapWidget) PointAt(x, y int) model.Point {
	ox, oy := m.origin()
	return unproject(ox+float64(x*2)+1, oy+float64(y*4)+2, m.zoom)
}

// origin is the world pixel at the top left dot of the canvas.
func (m *MapWidget) origin() (float64, float64) {
	cx, cy := project(m.center, m.zoom)
	return cx - float64(m.width), cy - float64(m.height*2)
}

func (m *MapWidget) dotOf(p model.Point) (float64, float64) {
	ox, oy := m.origin()
	x, y := project(p, m.zoom)

	return x - ox, y - oy
}

// cellOf returns the cell holding p, if it is on the canvas.
func (m *MapWidget) cellOf(p model.Point) (int, int, bool) {
	x, y := m.dotOf(p)
	cx, cy := int(math.Floor(x/2)), int(math.Floor(y/4))

	if cx < 0 || cy < 0 || cx >= m.width || cy >= m.height {
		return 0, 0, false
	}

	return cx, cy, true
}

func (m *MapWidget) View() string {
	if !m.created {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			helpStyle.Render(m.placeholder))
	}

	c := newCanvas(m.width, m.height)

	for _, h := range m.order {
		line, ok := m.overlays[h].(render.Polyline)
		if !ok {
			continue
		}

		if len(line.Points) == 1 {
			x, y := m.dotOf(line.Points[0])
			c.setDot(int(math.Round(x)), int(math.Round(y)))

			continue
		}

		for i := 1; i < len(line.Points); i++ {
			ax, ay := m.dotOf(line.Points[i-1])
			bx, by := m.dotOf(line.Points[i])
			c.line(ax, ay, bx, by)
		}
	}

	for _, h := range m.order {
		if mk, ok := m.overlays[h].(render.Marker); ok {
			if x, y, ok := m.cellOf(mk.At); ok {
				c.put(x, y, markerGlyph, kindMarker)
			}
		}
	}

	if mk, ok := m.overlays[m.popup].(render.Marker); ok {
		if x, y, ok := m.cellOf(mk.At); ok {
			c.text(x+1, y, " "+mk.Popup+" ", kindPopup)
		}
	}

	c.put(m.cursorX, m.cursorY, cursorGlyph, kindCursor)

	return c.render()
}

// equatorMetersPerDot is the ground size of one world pixel at zoom 0
const equatorMetersPerDot = 156543.03392

// Legend describes the projection and the ground size of one braille dot at
// the view center.
func (m *MapWidget) Legend() string {
	if !m.created {
		return "Web Mercator"
	}

	mpd := equatorMetersPerDot * math.Cos(m.center.Lat*math.Pi/180) / math.Exp2(float64(m.zoom))

	return "Web Mercator · 1 dot ≈ " + formatDistance(mpd)
}

func formatDistance(meters float64) string {
	switch {
	case meters < 1:
		return fmt.Sprintf("%.2f m", meters)
	case meters < 1000:
		return fmt.Sprintf("%.0f m", meters)
	default:
		return fmt.Sprintf("%.1f km", meters/1000)
	}
}
