package nav

import "context"

// Remaining is the rest of an interceptor chain. A queue delegates by
// calling Handle with the (possibly adjusted) pending State.
type Remaining interface {
	Handle(ctx context.Context, next *State) (*State, error)
}

// RemainingFunc adapts a function to the Remaining interface.
type RemainingFunc func(ctx context.Context, next *State) (*State, error)

// Handle calls f.
func (f RemainingFunc) Handle(ctx context.Context, next *State) (*State, error) {
	return f(ctx, next)
}

// Queue is a navigation interceptor. Queues are registered as an explicit
// ordered list at pipeline construction and invoked in that order for
// every successfully matched navigation.
//
// A queue may delegate to remaining, adjust next before delegating,
// redirect by starting a new navigation, or short-circuit by returning a
// State or an error of its own. The pipeline never retains or mutates a
// queue; implementations are expected to be stateless and safe for
// concurrent use (recovery attempts run queues in parallel).
type Queue interface {
	Handle(ctx context.Context, prev, next *State, remaining Remaining) (*State, error)
}

// QueueFunc adapts a function to the Queue interface.
type QueueFunc func(ctx context.Context, prev, next *State, remaining Remaining) (*State, error)

// Handle calls f.
func (f QueueFunc) Handle(ctx context.Context, prev, next *State, remaining Remaining) (*State, error) {
	return f(ctx, prev, next, remaining)
}
