// Package planner is the interaction controller of droneplan.
//
// A [Controller] owns the plan registry and the draft being drawn. Every user
// action reaches it as an [Intent] passed to [Controller.Dispatch]:
//
//	OpenForm            Idle/Viewing/Drafting -> Drafting
//	MapClicked{Point}   Drafting, adds a point to the draft
//	Save{Title}         Drafting -> Idle
//	SelectPlan{ID}      -> Viewing
//	Reset               any -> Idle, registry and storage emptied
//
// Warnings for missing input are shown through the [Alerter] and the
// operation leaves all state untouched.
package planner
