package view

import "github.com/matzehuels/contribchart/pkg/contrib"

// Status is the controller's position in the submit flow.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	NotFound
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case NotFound:
		return "not-found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of what a surface renders.
//
// Data and Err are set independently. After overlapping submissions both can
// be non-empty at once.
type State struct {
	Username string
	Loading  bool
	Data     *contrib.Data
	Err      string
	Theme    string
	Focused  bool // username field has input focus
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return len(s.Username) > 0
}
