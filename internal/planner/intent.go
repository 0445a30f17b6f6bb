package planner

import "github.com/inovacc/droneplan/internal/model"

// Intent is a user action. The set is closed: OpenForm, MapClicked, Save,
// SelectPlan and Reset.
type Intent interface {
	intent()
}

// OpenForm starts a new draft.
type OpenForm struct{}

// MapClicked adds a point to the draft.
type MapClicked struct {
	Point model.Point
}

// Save promotes the draft into a saved plan.
type Save struct {
	Title string
}

// SelectPlan shows a saved plan on the map.
type SelectPlan struct {
	ID int64
}

// Reset deletes every saved plan and reloads the application.
type Reset struct{}

func (OpenForm) intent()   {}
func (MapClicked) intent() {}
func (Save) intent()       {}
func (SelectPlan) intent() {}
func (Reset) intent()      {}
