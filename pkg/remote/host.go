package remote

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wayfare-dev/wayfare/pkg/history"
	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// MessageType discriminates history messages on the wire.
type MessageType string

const (
	// TypePush instructs shells to push a new history entry.
	TypePush MessageType = "push"

	// TypeReplace instructs shells to replace the current entry.
	TypeReplace MessageType = "replace"

	// TypePop is sent by shells when the user traverses history.
	TypePop MessageType = "pop"
)

// Message is the JSON frame exchanged with browser shells.
type Message struct {
	Type   MessageType `json:"type"`
	Path   string      `json:"path"`
	Search string      `json:"search,omitempty"`
}

// Host is a history.Host whose entries live in connected browser shells.
// Commits broadcast to every client; a pop message from any client fires
// the adapter's pop handler.
type Host struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	handler  func(history.PopEvent)
	location string
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger for connection lifecycle events.
func WithHostLogger(log *slog.Logger) HostOption {
	return func(h *Host) {
		h.log = log
	}
}

// WithCheckOrigin sets the WebSocket origin check. The default accepts
// every origin, which is only appropriate for development setups.
func WithCheckOrigin(check func(r *http.Request) bool) HostOption {
	return func(h *Host) {
		h.upgrader.CheckOrigin = check
	}
}

// NewHost creates a host with no connected shells.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	return h
}

// HandleWebSocket upgrades the request and services the shell until it
// disconnects, forwarding its pop messages to the pop handler.
func (h *Host) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.log.Debug("shell connected", "remote", conn.RemoteAddr().String())

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type != TypePop {
			continue
		}

		h.mu.RLock()
		handler := h.handler
		h.mu.RUnlock()

		if handler != nil {
			path := msg.Path
			if msg.Search != "" {
				path += "?" + msg.Search
			}
			handler(history.PopEvent{Path: path})
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
	h.log.Debug("shell disconnected", "remote", conn.RemoteAddr().String())
}

// Push broadcasts a push command for the committed state.
func (h *Host) Push(state *nav.State, path string) error {
	h.setLocation(path)
	h.broadcast(Message{Type: TypePush, Path: path, Search: searchOf(state)})
	return nil
}

// Replace broadcasts a replace command for the committed state.
func (h *Host) Replace(state *nav.State, path string) error {
	h.setLocation(path)
	h.broadcast(Message{Type: TypeReplace, Path: path, Search: searchOf(state)})
	return nil
}

// SetPopHandler installs the traversal listener.
func (h *Host) SetPopHandler(handler func(history.PopEvent)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
}

// Location returns the path of the most recent commit.
func (h *Host) Location() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.location
}

// ClientCount returns the number of connected shells.
func (h *Host) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all shells.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

func (h *Host) setLocation(path string) {
	h.mu.Lock()
	h.location = path
	h.mu.Unlock()
}

// broadcast sends a message to all connected shells, dropping clients
// whose writes fail.
func (h *Host) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// searchOf extracts the query string from a state, tolerating nil.
func searchOf(state *nav.State) string {
	if state == nil {
		return ""
	}
	return state.Search
}
