package nav

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/wayfare-dev/wayfare/pkg/route"
)

// Pipeline drives navigation attempts through matching, the interceptor
// chain, and the default render/commit handler. A Pipeline is constructed
// once at startup with its collaborators and passed by reference; there is
// no process-wide instance.
type Pipeline struct {
	table   *route.Table
	engine  Engine
	outlet  Outlet
	queues  []Queue
	history History
	log     *slog.Logger

	// current is the single published-State cell. It is last-write-wins:
	// two overlapping navigations may both commit, and the later commit
	// overwrites the earlier one. No generation check guards it.
	current atomic.Pointer[State]
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithQueues sets the ordered interceptor list. Queues run in the given
// order for matched navigations and concurrently during recovery.
func WithQueues(queues ...Queue) Option {
	return func(p *Pipeline) {
		p.queues = queues
	}
}

// WithHistory sets the history adapter commits are issued through.
func WithHistory(h History) Option {
	return func(p *Pipeline) {
		p.history = h
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// New creates a pipeline over the given route table and render
// collaborators. Engine and outlet may be nil for headless pipelines.
func New(table *route.Table, engine Engine, outlet Outlet, opts ...Option) *Pipeline {
	p := &Pipeline{
		table:  table,
		engine: engine,
		outlet: outlet,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.table == nil {
		p.table = route.NewTable()
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// Current returns the currently published State, or nil before the first
// committed navigation.
func (p *Pipeline) Current() *State {
	return p.current.Load()
}

// NavigateOptions configures a single navigation.
type NavigateOptions struct {
	// Search overrides the query string carried by the target path.
	Search string

	// Action selects push, replace, or pop history behavior.
	Action Action

	searchSet bool
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithSearch sets the query string for the resulting State, overriding
// any query carried by the target path.
func WithSearch(search string) NavigateOption {
	return func(o *NavigateOptions) {
		o.Search = search
		o.searchSet = true
	}
}

// WithAction sets the history action. The default is ActionPush.
func WithAction(action Action) NavigateOption {
	return func(o *NavigateOptions) {
		o.Action = action
	}
}

// Navigate resolves a path target and drives it through the pipeline.
// It returns the committed State or the error that blocked the attempt.
//
// The target may carry a query string and the configured base prefix;
// both are stripped before matching. If canonicalization changed the path
// a push is demoted to replace so history is not polluted with duplicate
// entries for the same location.
func (p *Pipeline) Navigate(ctx context.Context, target string, opts ...NavigateOption) (*State, error) {
	options := applyNavigateOptions(opts)

	path, query, changed, err := Canonicalize(target)
	if err != nil {
		return nil, err
	}
	if changed && options.Action == ActionPush {
		options.Action = ActionReplace
	}
	if p.history != nil {
		path = p.history.Rebase(path, false)
	}

	search := query
	if options.searchSet {
		search = options.Search
	}

	prev := p.current.Load()

	seg, ok := p.table.Match(path)
	if !ok {
		p.log.Debug("no route matched, running recovery", "path", path)
		degenerate := &State{
			Path:    path,
			Search:  search,
			Segment: &route.Segment{Params: route.Params{}},
		}
		return p.recover(ctx, prev, degenerate)
	}

	next := &State{
		Path:    route.Join(seg),
		Search:  search,
		Segment: seg,
	}
	return p.run(ctx, prev, next, options.Action)
}

// NavigateSegment drives an already-matched chain through the pipeline,
// bypassing re-matching. History replay uses this to restore a previously
// committed State.
func (p *Pipeline) NavigateSegment(ctx context.Context, seg *route.Segment, opts ...NavigateOption) (*State, error) {
	options := applyNavigateOptions(opts)

	root := route.Spool(seg, true)
	next := &State{
		Path:    route.Join(root),
		Search:  options.Search,
		Segment: root,
	}
	return p.run(ctx, p.current.Load(), next, options.Action)
}

func applyNavigateOptions(opts []NavigateOption) NavigateOptions {
	var options NavigateOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// run invokes the interceptor chain for a matched navigation. The chain
// is composed back to front so queues execute in registration order, each
// settling fully before the next begins, terminating in the default
// handler. A queue error propagates to the caller uncaught.
func (p *Pipeline) run(ctx context.Context, prev, next *State, action Action) (*State, error) {
	var remaining Remaining = RemainingFunc(func(ctx context.Context, s *State) (*State, error) {
		return p.commit(ctx, s, action)
	})

	for i := len(p.queues) - 1; i >= 0; i-- {
		q := p.queues[i]
		inner := remaining
		remaining = RemainingFunc(func(ctx context.Context, s *State) (*State, error) {
			return q.Handle(ctx, prev, s, inner)
		})
	}

	return remaining.Handle(ctx, next)
}

// recover gives every queue a chance to redirect an unmatched path. The
// attempts run concurrently, each against the degenerate State with a
// terminal chain that reports not-found; the first attempt to produce a
// State wins, the rest are cancelled and their errors swallowed. With no
// queues registered, or with every attempt failing, the navigation
// rejects with a NotFoundError carrying the stripped path.
func (p *Pipeline) recover(ctx context.Context, prev, degenerate *State) (*State, error) {
	if len(p.queues) == 0 {
		return nil, &NotFoundError{Path: degenerate.Path}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	terminal := RemainingFunc(func(ctx context.Context, s *State) (*State, error) {
		return nil, &NotFoundError{Path: degenerate.Path}
	})

	type attempt struct {
		state *State
		err   error
	}
	results := make(chan attempt, len(p.queues))
	for _, q := range p.queues {
		go func(q Queue) {
			s, err := q.Handle(ctx, prev, degenerate, terminal)
			results <- attempt{state: s, err: err}
		}(q)
	}

	for range p.queues {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case a := <-results:
			if a.err == nil && a.state != nil {
				return a.state, nil
			}
		}
	}
	return nil, &NotFoundError{Path: degenerate.Path}
}

// commit is the default handler at the end of every successful chain: it
// composes the render tree, hands it to the outlet, publishes the State,
// and issues the history commit unless the navigation is a pop replay.
func (p *Pipeline) commit(ctx context.Context, s *State, action Action) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree := p.compose(s.Segment)
	if p.outlet != nil {
		if err := p.outlet.Render(tree); err != nil {
			return nil, err
		}
	}

	p.current.Store(s)

	if action != ActionPop && p.history != nil {
		visible := p.history.Rebase(s.Path, true)
		if s.Search != "" {
			visible += "?" + s.Search
		}
		if err := p.history.Commit(s, visible, action == ActionReplace); err != nil {
			return nil, err
		}
	}

	p.log.Debug("navigation committed", "path", s.Path, "action", action.String())
	return s, nil
}
