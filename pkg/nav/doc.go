// Package nav implements the Wayfare navigation pipeline.
//
// A Pipeline orchestrates one navigation attempt: it canonicalizes the
// requested path, matches it against a route table, drives the match
// through an ordered chain of interceptors (Queues), and finally renders
// the matched chain and commits it to history.
//
// # Control flow
//
// For a successful match the registered queues run strictly sequentially
// in registration order. Each queue may delegate to the remaining chain,
// adjust the pending State before delegating, redirect by calling Navigate
// itself, or block by returning an error. The chain terminates in the
// pipeline's default handler, which composes the render tree, publishes
// the new State, and commits history.
//
// When no route matches, every queue instead runs concurrently against a
// degenerate State as an independent recovery attempt; the first queue to
// produce a State wins and the remaining attempts are cancelled. If all
// attempts fail the navigation rejects with a NotFoundError.
//
// A queue error after a successful match propagates directly to the
// Navigate caller: the default handler never runs, so the currently
// published State and rendered output stay untouched.
//
// # Usage
//
//	pipe := nav.New(table, engine, outlet,
//	    nav.WithQueues(authQueue, loggingQueue),
//	    nav.WithHistory(adapter),
//	)
//
//	state, err := pipe.Navigate(ctx, "users/7")
package nav
