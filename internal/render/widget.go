// Package render draws plans through a map widget.
//
// The widget itself (tiles, projection, pan and zoom, the actual pixels) is
// an external collaborator reached through [Widget]. [Renderer] adds the
// fixed marker style, the cumulative path drawing and the handle
// bookkeeping on top of it.
package render

import (
	"github.com/inovacc/droneplan/internal/model"
)

// Handle is an opaque reference to an overlay added to a widget. The zero
// Handle never refers to an overlay.
type Handle uint64

// Overlay is anything a widget can draw on top of the map.
type Overlay interface {
	Bounds() Bounds
}

// Marker is a filled circle with an optional popup.
type Marker struct {
	At          model.Point
	Radius      int
	Color       string
	FillOpacity float64
	Popup       string
	OpenPopup   bool
}

func (m Marker) Bounds() Bounds {
	return BoundsOf([]model.Point{m.At})
}

// Polyline joins its points in order.
type Polyline struct {
	Points []model.Point
	Color  string
}

func (p Polyline) Bounds() Bounds {
	return BoundsOf(p.Points)
}

// Widget is the capability surface of the map engine.
type Widget interface {
	CreateView(center model.Point, zoom int)
	AddOverlay(o Overlay) Handle
	RemoveOverlay(h Handle)
	FitBounds(b Bounds)
	SetView(center model.Point, zoom int, animated bool)
}
