// Package route implements declarative route definitions and path matching
// for Wayfare applications.
//
// The package provides:
//   - Route definitions with nested children and named slots
//   - An insertion-ordered Table of top-level routes
//   - A pure recursive-descent matcher with optional-parameter backtracking
//   - Segment chains linking matched routes to their extracted parameters
//   - Join/Spool helpers for converting between chains and path strings
//
// # Patterns
//
// Route paths are /-delimited patterns. Segments starting with a colon are
// parameters; a trailing question mark marks a parameter optional:
//
//	"users"           → matches "users"
//	"users/:id"       → matches "users/42" with params["id"] == "42"
//	"users/:id?"      → matches "users" and "users/42"
//	""                → index route, matches the empty path
//
// Routes may declare Children, which match against the path suffix left
// after the parent pattern is consumed:
//
//	route.Route{Path: "users", Children: []*route.Route{{Path: ":id"}}}
//
// # Matching
//
// Match walks candidates in order and returns the first full match as a
// Segment chain. Index routes (an empty pattern segment at position zero)
// have the lowest priority among candidates at the same level: siblings
// registered after them are probed first. Optional parameters prefer the
// absent interpretation, falling back to consuming one path segment.
//
// # Usage
//
//	table := route.NewTable()
//	table.Add(&route.Route{Path: "users", Children: []*route.Route{{Path: ":id"}}})
//
//	seg, ok := table.Match("users/7")
//	if ok {
//	    // seg.Child.Params["id"] == "7"
//	    // route.Join(seg) == "users/7"
//	}
package route
