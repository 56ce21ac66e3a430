package history

import (
	"context"
	"errors"
	"testing"

	"github.com/wayfare-dev/wayfare/pkg/nav"
	"github.com/wayfare-dev/wayfare/pkg/route"
)

// newPipeline wires a pipeline over a memory host, returning both.
// The adapter is left unconnected so tests control the listener slot.
func newPipeline(t *testing.T) (*nav.Pipeline, *Adapter, *MemoryHost) {
	t.Helper()

	table := route.NewTable()
	err := table.Add(&route.Route{
		Path:      "users",
		Component: "user-list",
		Children:  []*route.Route{{Path: ":id", Component: "user-detail"}},
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	host := NewMemoryHost()
	adapter := NewAdapter(host)
	pipe := nav.New(table, nil, nil, nav.WithHistory(adapter))
	return pipe, adapter, host
}

func TestAdapterConnectionState(t *testing.T) {
	pipe, adapter, _ := newPipeline(t)

	if err := adapter.Disconnect(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Disconnect before Connect: err = %v, want ErrNotConnected", err)
	}

	if err := adapter.Connect(pipe, "", false); err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	if err := adapter.Connect(pipe, "", false); !errors.Is(err, ErrConnected) {
		t.Errorf("second Connect: err = %v, want ErrConnected", err)
	}

	if err := adapter.Disconnect(); err != nil {
		t.Fatalf("Disconnect error: %v", err)
	}
	if err := adapter.Connect(pipe, "", false); err != nil {
		t.Errorf("reconnect after Disconnect: err = %v", err)
	}
}

func TestAdapterRebase(t *testing.T) {
	pipe, adapter, _ := newPipeline(t)
	if err := adapter.Connect(pipe, "/app", false); err != nil {
		t.Fatalf("Connect error: %v", err)
	}

	tests := []struct {
		path   string
		prefix bool
		want   string
	}{
		{"users/7", true, "/app/users/7"},
		{"app/users/7", true, "app/users/7"}, // already prefixed
		{"app/users/7", false, "users/7"},
		{"users/7", false, "users/7"}, // nothing shared
		{"app", false, ""},
	}

	for _, tt := range tests {
		if got := adapter.Rebase(tt.path, tt.prefix); got != tt.want {
			t.Errorf("Rebase(%q, %v) = %q, want %q", tt.path, tt.prefix, got, tt.want)
		}
	}
}

func TestAdapterRebaseUnconnected(t *testing.T) {
	_, adapter, _ := newPipeline(t)

	if got := adapter.Rebase("users/7", true); got != "users/7" {
		t.Errorf("Rebase with empty base = %q, want unchanged path", got)
	}
}

func TestAdapterHashBasedBase(t *testing.T) {
	pipe, adapter, _ := newPipeline(t)
	if err := adapter.Connect(pipe, "app/", true); err != nil {
		t.Fatalf("Connect error: %v", err)
	}

	if got := adapter.Rebase("users/7", true); got != "app/#!/users/7" {
		t.Errorf("hash-based Rebase = %q, want %q", got, "app/#!/users/7")
	}
}

func TestAdapterPopReplay(t *testing.T) {
	pipe, adapter, host := newPipeline(t)
	if err := adapter.Connect(pipe, "", false); err != nil {
		t.Fatalf("Connect error: %v", err)
	}

	if _, err := pipe.Navigate(context.Background(), "users"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if _, err := pipe.Navigate(context.Background(), "users/7"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	entries := host.Len()

	if !host.Back() {
		t.Fatal("Back() = false, want true")
	}

	current := pipe.Current()
	if current == nil || current.Path != "users" {
		t.Fatalf("Current() = %+v, want replayed users state", current)
	}
	if host.Len() != entries {
		t.Error("pop replay must not add history entries")
	}
}

func TestAdapterPopFirstLoad(t *testing.T) {
	pipe, adapter, host := newPipeline(t)
	if err := adapter.Connect(pipe, "", false); err != nil {
		t.Fatalf("Connect error: %v", err)
	}

	// A first-load popstate carries no payload; the adapter resolves
	// the bare path instead.
	host.PopTo("users/9")

	current := pipe.Current()
	if current == nil || current.Path != "users/9" {
		t.Fatalf("Current() = %+v, want resolved users/9 state", current)
	}
	if got := current.Segment.Child.Params["id"]; got != "9" {
		t.Errorf("params[id] = %q, want %q", got, "9")
	}
	if host.Len() != 0 {
		t.Error("first-load pop must not commit history")
	}
}

func TestAdapterDisconnectRemovesListener(t *testing.T) {
	pipe, adapter, host := newPipeline(t)
	if err := adapter.Connect(pipe, "", false); err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	if err := adapter.Disconnect(); err != nil {
		t.Fatalf("Disconnect error: %v", err)
	}

	host.PopTo("users/9")
	if pipe.Current() != nil {
		t.Error("pop after Disconnect must not navigate")
	}
}
