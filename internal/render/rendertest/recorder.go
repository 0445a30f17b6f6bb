// Package rendertest provides an in-memory render.Widget for tests.
package rendertest

import (
	"slices"

	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/render"
)

// View is the last view applied to the widget.
type View struct {
	Center   model.Point
	Zoom     int
	Animated bool
}

// Recorder keeps every live overlay and the calls that changed the view.
type Recorder struct {
	Created  bool
	View     View
	Fits     []render.Bounds
	SetViews []View

	overlays map[render.Handle]render.Overlay
	order    []render.Handle
	next     render.Handle
}

func NewRecorder() *Recorder {
	return &Recorder{overlays: make(map[render.Handle]render.Overlay)}
}

func (r *Recorder) CreateView(center model.Point, zoom int) {
	r.Created = true
	r.View = View{Center: center, Zoom: zoom}
}

func (r *Recorder) AddOverlay(o render.Overlay) render.Handle {
	r.next++
	r.overlays[r.next] = o
	r.order = append(r.order, r.next)

	return r.next
}

func (r *Recorder) RemoveOverlay(h render.Handle) {
	if _, ok := r.overlays[h]; !ok {
		return
	}

	delete(r.overlays, h)
	r.order = slices.DeleteFunc(r.order, func(x render.Handle) bool { return x == h })
}

func (r *Recorder) FitBounds(b render.Bounds) {
	r.Fits = append(r.Fits, b)
}

func (r *Recorder) SetView(center model.Point, zoom int, animated bool) {
	r.View = View{Center: center, Zoom: zoom, Animated: animated}
	r.SetViews = append(r.SetViews, r.View)
}

// Markers returns the live markers in creation order.
func (r *Recorder) Markers() []render.Marker {
	var out []render.Marker
	for _, h := range r.order {
		if m, ok := r.overlays[h].(render.Marker); ok {
			out = append(out, m)
		}
	}

	return out
}

// Lines returns the live polylines in creation order.
func (r *Recorder) Lines() []render.Polyline {
	var out []render.Polyline
	for _, h := range r.order {
		if l, ok := r.overlays[h].(render.Polyline); ok {
			out = append(out, l)
		}
	}

	return out
}

// MarkerPoints returns the positions of the live markers.
func (r *Recorder) MarkerPoints() []model.Point {
	var out []model.Point
	for _, m := range r.Markers() {
		out = append(out, m.At)
	}

	return out
}

// Overlays is the number of live overlays.
func (r *Recorder) Overlays() int {
	return len(r.overlays)
}
