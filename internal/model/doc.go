// Package model defines the data structures shared by every droneplan layer.
//
// # Point
//
// A [Point] is a latitude/longitude pair. It is stored as a two element
// array so persisted plans stay compact:
//
//	[44.43, 26.03]
//
// # Plan
//
// A [Plan] is a saved, immutable flight plan:
//
//	type Plan struct {
//	    ID     int64   // creation time in Unix milliseconds
//	    Title  string  // user supplied, not unique
//	    Points []Point // drawing order, may be empty
//	}
//
// # Config
//
// The [Config] struct holds the map and geolocation settings persisted next
// to the plans.
package model
