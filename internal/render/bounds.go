package render

import (
	"math"

	"github.com/inovacc/droneplan/internal/model"
)

// Bounds is a latitude/longitude rectangle. The zero value is empty.
type Bounds struct {
	SouthWest model.Point
	NorthEast model.Point
	valid     bool
}

// BoundsOf returns the smallest rectangle holding every point.
func BoundsOf(points []model.Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}

	return b
}

// Extend grows the rectangle to include p.
func (b Bounds) Extend(p model.Point) Bounds {
	if !b.valid {
		return Bounds{SouthWest: p, NorthEast: p, valid: true}
	}

	b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)

	return b
}

// IsValid reports whether the rectangle holds at least one point.
func (b Bounds) IsValid() bool {
	return b.valid
}

// Center is the midpoint of the rectangle in degrees.
func (b Bounds) Center() model.Point {
	return model.Point{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
