package render

import (
	"slices"

	"github.com/inovacc/droneplan/internal/model"
)

const (
	markerColor  = "red"
	markerRadius = 2
	lineColor    = "red"
	popupLabel   = "Point"
)

// Renderer draws markers and paths through a Widget and remembers the
// bounds of every path it created so views can be fitted to them.
type Renderer struct {
	widget Widget
	paths  map[Handle]Bounds
}

func NewRenderer(w Widget) *Renderer {
	return &Renderer{
		widget: w,
		paths:  make(map[Handle]Bounds),
	}
}

// CreateView creates the map view centered on p.
func (r *Renderer) CreateView(center model.Point, zoom int) {
	r.widget.CreateView(center, zoom)
}

// ShowMarker draws the fixed style marker at p with its popup opened.
func (r *Renderer) ShowMarker(p model.Point) Handle {
	return r.widget.AddOverlay(Marker{
		At:          p,
		Radius:      markerRadius,
		Color:       markerColor,
		FillOpacity: 1,
		Popup:       popupLabel,
		OpenPopup:   true,
	})
}

// ShowPath draws a new polyline through every point, in order.
func (r *Renderer) ShowPath(points []model.Point) Handle {
	line := Polyline{Points: slices.Clone(points), Color: lineColor}
	h := r.widget.AddOverlay(line)
	r.paths[h] = line.Bounds()

	return h
}

// RemoveAll removes every overlay owned by the two lists and empties them.
func (r *Renderer) RemoveAll(markers, lines *HandleList) {
	for _, h := range markers.take() {
		r.widget.RemoveOverlay(h)
	}

	for _, h := range lines.take() {
		r.widget.RemoveOverlay(h)
		delete(r.paths, h)
	}
}

// CenterOn moves the view to p at the given zoom.
func (r *Renderer) CenterOn(p model.Point, zoom int, animated bool) {
	r.widget.SetView(p, zoom, animated)
}

// FitToBounds fits the view to a path created by ShowPath. Unknown handles
// are ignored.
func (r *Renderer) FitToBounds(line Handle) {
	b, ok := r.paths[line]
	if !ok || !b.IsValid() {
		return
	}

	r.widget.FitBounds(b)
}
