package history

import "github.com/wayfare-dev/wayfare/pkg/nav"

// PopEvent describes one back/forward traversal reported by a host.
type PopEvent struct {
	// State is the State previously pushed for the entry being restored.
	// It is nil on first load, when the host has no recorded payload.
	State *nav.State

	// Path is the visible location of the entry. It is the fallback used
	// to resolve the navigation when State is nil.
	Path string
}

// Host abstracts a history mechanism. A browser-backed host forwards to
// pushState/replaceState and popstate; MemoryHost keeps an entry stack in
// memory for deterministic tests.
type Host interface {
	// Push appends a new entry carrying state, visible at path.
	Push(state *nav.State, path string) error

	// Replace overwrites the current entry.
	Replace(state *nav.State, path string) error

	// SetPopHandler installs the traversal listener. A nil handler
	// removes the current one. Hosts hold at most one handler.
	SetPopHandler(h func(PopEvent))

	// Location returns the visible path of the current entry.
	Location() string
}
