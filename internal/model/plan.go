package model

import (
	"slices"
	"time"
)

type Plan struct {
	// ID is the creation time in Unix milliseconds
	ID int64 `json:"id" yaml:"id"`

	// Title is the user supplied name of the plan
	Title string `json:"title" yaml:"title"`

	// Points are kept in drawing order
	Points []Point `json:"points" yaml:"points,flow"`
}

// NewPlan builds a plan stamped with the given creation time. The points are
// copied so later changes to the caller's slice do not leak into the plan.
func NewPlan(title string, points []Point, createdAt time.Time) Plan {
	pts := slices.Clone(points)
	if pts == nil {
		pts = []Point{}
	}

	return Plan{
		ID:     createdAt.UnixMilli(),
		Title:  title,
		Points: pts,
	}
}

// CreatedAt converts the id back into the creation time.
func (p Plan) CreatedAt() time.Time {
	return time.UnixMilli(p.ID)
}

// First returns the first point of the plan, if any.
func (p Plan) First() (Point, bool) {
	if len(p.Points) == 0 {
		return Point{}, false
	}

	return p.Points[0], true
}

// FindPlan returns the plan with the given id.
func FindPlan(plans []Plan, id int64) (Plan, bool) {
	i := slices.IndexFunc(plans, func(p Plan) bool { return p.ID == id })
	if i < 0 {
		return Plan{}, false
	}

	return plans[i], true
}
