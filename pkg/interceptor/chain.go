package interceptor

import (
	"context"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// Chain combines multiple queues into one, preserving order: the first
// queue sees the navigation first and the last delegates to the outer
// remaining chain.
func Chain(queues ...nav.Queue) nav.Queue {
	return nav.QueueFunc(func(ctx context.Context, prev, next *nav.State, remaining nav.Remaining) (*nav.State, error) {
		chain := remaining
		for i := len(queues) - 1; i >= 0; i-- {
			q := queues[i]
			inner := chain
			chain = nav.RemainingFunc(func(ctx context.Context, s *nav.State) (*nav.State, error) {
				return q.Handle(ctx, prev, s, inner)
			})
		}
		return chain.Handle(ctx, next)
	})
}

// Skip bypasses q when the condition holds, delegating straight to the
// remaining chain.
func Skip(condition func(prev, next *nav.State) bool, q nav.Queue) nav.Queue {
	return nav.QueueFunc(func(ctx context.Context, prev, next *nav.State, remaining nav.Remaining) (*nav.State, error) {
		if condition(prev, next) {
			return remaining.Handle(ctx, next)
		}
		return q.Handle(ctx, prev, next, remaining)
	})
}

// Only runs q solely when the condition holds, delegating otherwise.
func Only(condition func(prev, next *nav.State) bool, q nav.Queue) nav.Queue {
	return Skip(func(prev, next *nav.State) bool { return !condition(prev, next) }, q)
}
