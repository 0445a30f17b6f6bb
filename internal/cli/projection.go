package cli

import (
	"math"

	"github.com/inovacc/droneplan/internal/model"
)

const (
	tileSize = 256.0

	// maxLatitude is where Web Mercator is cut off
	maxLatitude = 85.0511287798
)

func worldSize(zoom int) float64 {
	return tileSize * math.Exp2(float64(zoom))
}

// project converts p into Web Mercator world pixels at zoom. One braille dot
// is one world pixel.
func project(p model.Point, zoom int) (x, y float64) {
	s := worldSize(zoom)
	lat := math.Max(-maxLatitude, math.Min(maxLatitude, p.Lat))
	sin := math.Sin(lat * math.Pi / 180)

	x = (p.Lng + 180) / 360 * s
	y = (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * s

	return x, y
}

// unproject is the inverse of project.
func unproject(x, y float64, zoom int) model.Point {
	s := worldSize(zoom)
	n := math.Pi - 2*math.Pi*y/s

	return model.Point{
		Lat: 180 / math.Pi * math.Atan(math.Sinh(n)),
		Lng: x/s*360 - 180,
	}
}
