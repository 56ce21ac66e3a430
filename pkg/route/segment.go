package route

import "strings"

// Params holds parameters extracted during matching, keyed by name.
// An optional parameter matched as absent is not present in the map.
type Params map[string]string

// Get returns the bound value for name and whether it was bound at all.
// An optional parameter that matched as absent reports ok == false.
func (p Params) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// clone returns a copy of p with name bound to value. The receiver is
// never mutated; the matcher backtracks by discarding copies.
func (p Params) clone(name, value string) Params {
	next := make(Params, len(p)+1)
	for k, v := range p {
		next[k] = v
	}
	next[name] = value
	return next
}

// Segment is one matched Route instance bound to its extracted parameters.
// Segments form a singly-branching chain mirroring the nesting depth of the
// matched routes: Parent points toward the outermost level, Child toward
// the innermost. A chain is built fresh per match attempt and is not
// mutated afterwards.
type Segment struct {
	Route  *Route
	Params Params
	Parent *Segment
	Child  *Segment
}

// Truncate returns a copy of the segment with its Child link cleared,
// leaving Parent links intact. Recovery walks use truncated copies to
// re-probe ancestor levels without disturbing the original chain.
func (s *Segment) Truncate() *Segment {
	if s == nil {
		return nil
	}
	return &Segment{Route: s.Route, Params: s.Params, Parent: s.Parent}
}

// Spool follows the chain to its end: with rewind true it walks Parent
// links to the outermost ancestor, otherwise it walks Child links to the
// innermost descendant.
func Spool(s *Segment, rewind bool) *Segment {
	if s == nil {
		return nil
	}
	if rewind {
		for s.Parent != nil {
			s = s.Parent
		}
		return s
	}
	for s.Child != nil {
		s = s.Child
	}
	return s
}

// Join produces the canonical absolute path for a matched chain. It spools
// to the root ancestor, then walks outward to inward substituting bound
// parameter values into each level's pattern. Unbound optional parameters
// and empty tokens are omitted. Join is the inverse of Match for paths
// without redundant slashes.
func Join(s *Segment) string {
	var parts []string
	for s = Spool(s, true); s != nil; s = s.Child {
		if s.Route == nil {
			continue
		}
		for _, tok := range splitPattern(s.Route.Path) {
			if strings.HasPrefix(tok, ":") {
				name := strings.TrimSuffix(tok[1:], "?")
				if v, ok := s.Params[name]; ok {
					parts = append(parts, v)
				}
				continue
			}
			if tok != "" {
				parts = append(parts, tok)
			}
		}
	}
	return strings.Join(parts, "/")
}

// splitPattern splits a pattern or path on "/". Unlike URL routers the
// empty string is significant here (it declares an index route), so the
// result always has at least one element.
func splitPattern(path string) []string {
	return strings.Split(path, "/")
}
