package model

import (
	"encoding/json"
	"fmt"
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Pt is shorthand for building a Point.
func Pt(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

// MarshalJSON encodes the point as [lat, lng].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

// UnmarshalJSON decodes a [lat, lng] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("point must have 2 coordinates, got %d", len(pair))
	}

	p.Lat, p.Lng = pair[0], pair[1]

	return nil
}

// MarshalYAML encodes the point as a flow sequence [lat, lng].
func (p Point) MarshalYAML() (any, error) {
	return []float64{p.Lat, p.Lng}, nil
}
