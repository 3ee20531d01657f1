package bt

// Status represents the result of evaluating a behavior tree node.
// Success and Failure are terminal; Running asks to be evaluated again next tick.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusRunning:
		return "Running"
	default:
		return "Invalid"
	}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s >= StatusSuccess && s <= StatusRunning
}

// IsTerminal reports whether s ends the evaluation of a branch.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailure
}
