package planner

// State of the controller.
type State int

const (
	Idle State = iota
	Drafting
	Viewing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drafting:
		return "drafting"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}
