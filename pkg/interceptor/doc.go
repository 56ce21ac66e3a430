// Package interceptor provides ready-made navigation queues and helpers
// for composing them.
//
// Queues wrap the navigation pipeline the way HTTP middleware wraps a
// handler: each one sees the previous and pending State and decides
// whether to delegate, adjust, redirect, or block. This package ships
// observability queues (structured logging, Prometheus metrics,
// OpenTelemetry tracing) and combinators (Chain, Skip, Only).
//
// Example:
//
//	pipe := nav.New(table, engine, outlet,
//	    nav.WithQueues(
//	        interceptor.Logging(),
//	        interceptor.Metrics(interceptor.WithNamespace("myapp")),
//	        interceptor.OpenTelemetry(),
//	        authQueue,
//	    ),
//	)
package interceptor
