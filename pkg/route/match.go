package route

import (
	"net/url"
	"strings"
)

// Match matches a path against candidate routes in order and returns the
// root Segment of the first full match. Matching is pure: candidates and
// previously built chains are never mutated, and backtracking works on
// fresh slices and parameter copies.
func Match(path string, routes []*Route) (*Segment, bool) {
	for i, r := range routes {
		if r == nil {
			continue
		}
		if seg, ok := matchRoute(r, path, routes[i+1:]); ok {
			return seg, true
		}
	}
	return nil, false
}

// matchRoute attempts one candidate. rest holds the sibling candidates
// registered after r; index routes yield to them before matching.
func matchRoute(r *Route, path string, rest []*Route) (*Segment, bool) {
	return matchSegments(r, splitPattern(r.Path), splitPattern(path), rest, Params{}, true)
}

// matchSegments walks pattern and path positions in lockstep.
//
// The two backtracking rules live here. An index route (empty pattern
// segment at position zero) first lets the remaining siblings try the full
// path; only if none of them matches is the empty segment dropped and
// matching resumed at the same path position. An optional parameter first
// probes the absent interpretation by re-inserting its own token into the
// path, which the literal-equality case then consumes without binding;
// only if that probe fails does the parameter bind one path segment.
func matchSegments(r *Route, pat, path []string, rest []*Route, params Params, first bool) (*Segment, bool) {
	if len(pat) == 0 {
		return descend(r, path, params)
	}

	tok := pat[0]
	switch {
	case len(path) > 0 && tok == path[0]:
		return matchSegments(r, pat[1:], path[1:], rest, params, false)

	case tok == "" && first:
		// Index routes are lowest priority among candidates at this
		// level: a later sibling that matches the full path wins.
		if seg, ok := Match(strings.Join(path, "/"), rest); ok {
			return seg, true
		}
		return matchSegments(r, pat[1:], path, rest, params, false)

	case strings.HasPrefix(tok, ":") && strings.HasSuffix(tok, "?"):
		// Probe the absent interpretation first. The token matches
		// itself literally, shifting the rest of the path right.
		probe := make([]string, 0, len(path)+1)
		probe = append(probe, tok)
		probe = append(probe, path...)
		if seg, ok := matchSegments(r, pat, probe, rest, params, false); ok {
			return seg, true
		}
		if len(path) == 0 || path[0] == "" {
			return nil, false
		}
		value, err := url.PathUnescape(path[0])
		if err != nil {
			return nil, false
		}
		name := strings.TrimSuffix(tok[1:], "?")
		return matchSegments(r, pat[1:], path[1:], rest, params.clone(name, value), false)

	case strings.HasPrefix(tok, ":"):
		// Parameters never bind the empty segment; an empty remainder
		// splits to one empty token, which only index patterns may claim.
		if len(path) == 0 || path[0] == "" {
			return nil, false
		}
		value, err := url.PathUnescape(path[0])
		if err != nil {
			return nil, false
		}
		return matchSegments(r, pat[1:], path[1:], rest, params.clone(tok[1:], value), false)

	default:
		return nil, false
	}
}

// descend finishes a candidate whose own pattern is fully consumed. Any
// remaining path suffix must be claimed by the route's children; a child
// match is linked below the new segment with a Parent back-link.
func descend(r *Route, path []string, params Params) (*Segment, bool) {
	seg := &Segment{Route: r, Params: params}

	if len(r.Children) > 0 {
		if child, ok := Match(strings.Join(path, "/"), r.Children); ok {
			seg.Child = child
			child.Parent = seg
			return seg, true
		}
		if len(path) > 0 {
			return nil, false
		}
	}

	if len(path) > 0 {
		return nil, false
	}
	return seg, true
}
