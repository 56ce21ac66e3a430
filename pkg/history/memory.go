package history

import (
	"sync"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// memoryEntry is one recorded history entry.
type memoryEntry struct {
	state *nav.State
	path  string
}

// MemoryHost is an in-memory Host for deterministic tests and headless
// use. Back and Forward drive the pop handler the way browser traversal
// would; PopTo simulates a first-load popstate that carries no payload.
type MemoryHost struct {
	mu      sync.Mutex
	entries []memoryEntry
	index   int
	handler func(PopEvent)
}

// NewMemoryHost creates an empty in-memory host.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{index: -1}
}

// Push appends a new entry, discarding any forward entries beyond the
// current position, exactly like browser pushState.
func (h *MemoryHost) Push(state *nav.State, path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], memoryEntry{state: state, path: path})
	h.index++
	return nil
}

// Replace overwrites the current entry, or creates the first one.
func (h *MemoryHost) Replace(state *nav.State, path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 {
		h.entries = append(h.entries, memoryEntry{state: state, path: path})
		h.index = 0
		return nil
	}
	h.entries[h.index] = memoryEntry{state: state, path: path}
	return nil
}

// SetPopHandler installs or clears the traversal listener.
func (h *MemoryHost) SetPopHandler(handler func(PopEvent)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
}

// Location returns the path of the current entry, or "" with no entries.
func (h *MemoryHost) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 || h.index >= len(h.entries) {
		return ""
	}
	return h.entries[h.index].path
}

// Len returns the number of recorded entries.
func (h *MemoryHost) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Back moves one entry backward and fires the pop handler. It reports
// whether a backward entry existed.
func (h *MemoryHost) Back() bool {
	h.mu.Lock()
	if h.index <= 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	entry := h.entries[h.index]
	handler := h.handler
	h.mu.Unlock()

	if handler != nil {
		handler(PopEvent{State: entry.state, Path: entry.path})
	}
	return true
}

// Forward moves one entry forward and fires the pop handler. It reports
// whether a forward entry existed.
func (h *MemoryHost) Forward() bool {
	h.mu.Lock()
	if h.index+1 >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index++
	entry := h.entries[h.index]
	handler := h.handler
	h.mu.Unlock()

	if handler != nil {
		handler(PopEvent{State: entry.state, Path: entry.path})
	}
	return true
}

// PopTo fires the pop handler with a bare path and no State payload,
// simulating the first-load popstate a browser delivers before anything
// was pushed.
func (h *MemoryHost) PopTo(path string) {
	h.mu.Lock()
	handler := h.handler
	h.mu.Unlock()

	if handler != nil {
		handler(PopEvent{Path: path})
	}
}
