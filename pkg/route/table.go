package route

// Table is an insertion-ordered set of top-level route definitions.
// Iteration order is registration order and is significant: the matcher
// takes the first full match, so earlier routes win ties.
//
// Only top-level routes are retained. Nested routes live inside their
// parent's Children; adding a route strips its children from the root set
// so a route is never reachable both as a root and as a descendant.
type Table struct {
	routes []*Route
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a route at the end of the table. Any of the route's children
// already present as roots are removed first (a no-op if absent). Adding a
// route that is already present keeps its original position.
func (t *Table) Add(r *Route) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, child := range r.Children {
		t.Delete(child)
	}
	for _, existing := range t.routes {
		if existing == r {
			return nil
		}
	}
	t.routes = append(t.routes, r)
	return nil
}

// Delete removes a route from the root set. It reports whether the route
// was present.
func (t *Table) Delete(r *Route) bool {
	for i, existing := range t.routes {
		if existing == r {
			t.routes = append(t.routes[:i], t.routes[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all routes, resetting matching to "nothing registered".
func (t *Table) Clear() {
	t.routes = nil
}

// Len returns the number of top-level routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Routes returns the top-level routes in insertion order. The returned
// slice is a copy; mutating it does not affect the table.
func (t *Table) Routes() []*Route {
	out := make([]*Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match matches path against the table's routes in insertion order.
func (t *Table) Match(path string) (*Segment, bool) {
	return Match(path, t.routes)
}
