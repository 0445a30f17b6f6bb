package planner

import "errors"

var (
	// ErrTitleRequired is raised when a point is added or a plan saved
	// before a title was entered.
	ErrTitleRequired = errors.New("title required")

	// ErrEmptyPlan is raised when a plan without points is selected.
	ErrEmptyPlan = errors.New("plan has no points")

	// ErrLocationUnavailable is raised when the start position cannot be
	// resolved. The map stays uncreated.
	ErrLocationUnavailable = errors.New("location unavailable")
)

// Messages shown to the user for each warning.
const (
	msgAddPointTitle = "Please add a new plan and enter a title"
	msgSaveTitle     = "Please input a name for the plan before saving!"
	msgEmptyPlan     = "No point selected for this plan"
	msgNoLocation    = "Could not get your position, please verify your location settings and check your internet connection"
)
