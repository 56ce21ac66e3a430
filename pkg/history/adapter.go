package history

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/wayfare-dev/wayfare/pkg/nav"
	"github.com/wayfare-dev/wayfare/pkg/route"
)

// Sentinel errors for connection-state misuse.
var (
	// ErrConnected is returned by Connect when the adapter already has a
	// live listener registration.
	ErrConnected = errors.New("history: already connected")

	// ErrNotConnected is returned by Disconnect without a prior Connect.
	ErrNotConnected = errors.New("history: not connected")
)

// Navigator is the pipeline surface the adapter drives on pop events.
// *nav.Pipeline satisfies it.
type Navigator interface {
	Navigate(ctx context.Context, target string, opts ...nav.NavigateOption) (*nav.State, error)
	NavigateSegment(ctx context.Context, seg *route.Segment, opts ...nav.NavigateOption) (*nav.State, error)
}

// Adapter bridges pipeline commits to a Host and translates the host's
// back/forward traversal into pop navigations. It owns the base-href
// prefixing rules and guards the single listener slot: at most one
// Connect is live at a time.
type Adapter struct {
	host Host
	log  *slog.Logger

	mu        sync.Mutex
	connected bool
	navigator Navigator
	base      string
}

// NewAdapter creates an adapter over the given host.
func NewAdapter(host Host, opts ...AdapterOption) *Adapter {
	a := &Adapter{host: host}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	return a
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithAdapterLogger sets the logger used for pop-navigation failures.
func WithAdapterLogger(log *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		a.log = log
	}
}

// Connect installs the traversal listener and records the base href under
// which the application is mounted. With hashBased true the base href is
// normalized to end with a hash-bang segment, so visible URLs take the
// fragment form the host serves from a single document.
//
// Connect fails with ErrConnected while a previous registration is live.
func (a *Adapter) Connect(n Navigator, baseHref string, hashBased bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.connected {
		return ErrConnected
	}

	base := strings.TrimSuffix(baseHref, "/")
	if hashBased && !strings.HasSuffix(base, "#!") {
		if base != "" {
			base += "/"
		}
		base += "#!"
	}

	a.navigator = n
	a.base = base
	a.connected = true
	a.host.SetPopHandler(a.onPop)
	return nil
}

// Disconnect removes the listener and restores default base settings. It
// fails with ErrNotConnected when no registration is live.
func (a *Adapter) Disconnect() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.connected {
		return ErrNotConnected
	}

	a.host.SetPopHandler(nil)
	a.navigator = nil
	a.base = ""
	a.connected = false
	return nil
}

// Commit records a committed navigation on the host. It implements
// nav.History; the path arrives already rebased.
func (a *Adapter) Commit(state *nav.State, path string, replace bool) error {
	if replace {
		return a.host.Replace(state, path)
	}
	return a.host.Push(state, path)
}

// Rebase prefixes the base href onto path, or with prefix false strips
// the longest leading segment run path shares with the base href.
func (a *Adapter) Rebase(path string, prefix bool) string {
	a.mu.Lock()
	base := a.base
	a.mu.Unlock()

	if base == "" {
		return path
	}

	baseSegs := splitSegments(base)
	pathSegs := splitSegments(path)

	if prefix {
		if hasPrefixSegments(pathSegs, baseSegs) {
			return path
		}
		joined := strings.Join(append(baseSegs, pathSegs...), "/")
		if strings.HasPrefix(base, "/") {
			return "/" + joined
		}
		return joined
	}

	shared := 0
	for shared < len(baseSegs) && shared < len(pathSegs) && baseSegs[shared] == pathSegs[shared] {
		shared++
	}
	return strings.Join(pathSegs[shared:], "/")
}

// onPop translates one host traversal into a pop navigation. A recorded
// State replays its segment chain directly; a bare event falls back to
// resolving the event path, or the host's current location when even that
// is absent.
func (a *Adapter) onPop(ev PopEvent) {
	a.mu.Lock()
	n := a.navigator
	a.mu.Unlock()
	if n == nil {
		return
	}

	ctx := context.Background()

	if ev.State != nil && ev.State.Matched() {
		_, err := n.NavigateSegment(ctx, ev.State.Segment,
			nav.WithAction(nav.ActionPop), nav.WithSearch(ev.State.Search))
		if err != nil {
			a.log.Error("pop replay failed", "path", ev.State.Path, "error", err)
		}
		return
	}

	path := ev.Path
	if path == "" {
		path = a.host.Location()
	}
	if _, err := n.Navigate(ctx, a.Rebase(path, false), nav.WithAction(nav.ActionPop)); err != nil {
		a.log.Error("pop navigation failed", "path", path, "error", err)
	}
}

// splitSegments splits a path into its non-empty segments.
func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// hasPrefixSegments reports whether segs begins with prefix.
func hasPrefixSegments(segs, prefix []string) bool {
	if len(segs) < len(prefix) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}
