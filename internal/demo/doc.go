// Package demo wires a complete Wayfare stack into a runnable HTTP
// server: a small route set, an HTML render engine and outlet, logging
// and metrics queues, and a WebSocket history host that keeps connected
// browser shells in sync. The wayfare CLI serves it; tests use it as an
// end-to-end fixture.
package demo
