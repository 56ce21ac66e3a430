package route

import "fmt"

// Route is a declarative path pattern with an optional render target and
// nested children. Routes are closed data: every field is validated once at
// registration rather than checked ad hoc during matching.
type Route struct {
	// Path is the /-delimited pattern. Segments starting with ":" are
	// parameters; a trailing "?" marks a parameter optional. An empty
	// path declares an index route.
	Path string

	// Component is the opaque render-target identifier handed to the
	// render engine when this route is active. May be empty for routes
	// that only group children.
	Component string

	// Slots maps slot names to render-target identifiers for secondary
	// content rendered alongside Component.
	Slots map[string]string

	// Children are nested routes matched against the path suffix left
	// after this route's pattern is consumed.
	Children []*Route
}

// Validate checks the route definition and all its children.
// It rejects nil child entries and parameter segments without a name.
func (r *Route) Validate() error {
	if r == nil {
		return fmt.Errorf("route: nil route")
	}
	for _, tok := range splitPattern(r.Path) {
		if tok == ":" || tok == ":?" {
			return fmt.Errorf("route: pattern %q has an unnamed parameter", r.Path)
		}
	}
	for i, child := range r.Children {
		if child == nil {
			return fmt.Errorf("route: pattern %q has a nil child at index %d", r.Path, i)
		}
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}
