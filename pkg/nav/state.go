package nav

import "github.com/wayfare-dev/wayfare/pkg/route"

// State is an immutable snapshot of one committed navigation. Exactly one
// State is current at a time; a newly committed State fully replaces it.
type State struct {
	// Path is the canonical absolute path of the navigation, without the
	// base prefix and without the query string.
	Path string

	// Search is the query string, without the leading "?".
	Search string

	// Segment is the root of the matched chain. For a degenerate State
	// built during recovery it is an empty segment with no bound route.
	Segment *route.Segment
}

// Matched reports whether the State carries a real route match rather
// than the degenerate segment built for recovery attempts.
func (s *State) Matched() bool {
	return s != nil && s.Segment != nil && s.Segment.Route != nil
}

// Action selects how a committed navigation interacts with history.
type Action uint8

const (
	// ActionPush appends a new history entry.
	ActionPush Action = iota

	// ActionReplace overwrites the current history entry.
	ActionReplace

	// ActionPop replays an existing entry; no history commit is issued.
	ActionPop
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPush:
		return "push"
	case ActionReplace:
		return "replace"
	case ActionPop:
		return "pop"
	default:
		return "unknown"
	}
}
