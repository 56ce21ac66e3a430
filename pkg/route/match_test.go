package route

import "testing"

func TestMatchEmptyPath(t *testing.T) {
	seg, ok := Match("", []*Route{{Path: ""}})
	if !ok {
		t.Fatal("expected match for empty index route")
	}
	if len(seg.Params) != 0 {
		t.Errorf("len(params) = %d, want 0", len(seg.Params))
	}
}

func TestMatchNoRoutes(t *testing.T) {
	if _, ok := Match("missing", nil); ok {
		t.Error("expected no match with empty candidate list")
	}
}

func TestMatchLiteral(t *testing.T) {
	routes := []*Route{{Path: "users"}}

	tests := []struct {
		path string
		want bool
	}{
		{"users", true},
		{"user", false},
		{"users/extra", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := Match(tt.path, routes)
		if ok != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, ok, tt.want)
		}
	}
}

func TestMatchMandatoryParam(t *testing.T) {
	routes := []*Route{{Path: "item/:id"}}

	seg, ok := Match("item/42", routes)
	if !ok {
		t.Fatal("expected match")
	}
	if got := seg.Params["id"]; got != "42" {
		t.Errorf("params[id] = %q, want %q", got, "42")
	}

	if _, ok := Match("item", routes); ok {
		t.Error("expected no match without the mandatory segment")
	}
}

func TestMatchOptionalParam(t *testing.T) {
	routes := []*Route{{Path: "item/:id?"}}

	// Absent: the parameter stays unbound.
	seg, ok := Match("item", routes)
	if !ok {
		t.Fatal("expected match with absent optional param")
	}
	if _, bound := seg.Params.Get("id"); bound {
		t.Error("expected id to be unbound")
	}

	// Present: the parameter consumes one segment.
	seg, ok = Match("item/5", routes)
	if !ok {
		t.Fatal("expected match with present optional param")
	}
	if got := seg.Params["id"]; got != "5" {
		t.Errorf("params[id] = %q, want %q", got, "5")
	}
}

func TestMatchParamDecoding(t *testing.T) {
	routes := []*Route{{Path: "item/:name"}}

	seg, ok := Match("item/a%20b", routes)
	if !ok {
		t.Fatal("expected match")
	}
	if got := seg.Params["name"]; got != "a b" {
		t.Errorf("params[name] = %q, want %q", got, "a b")
	}

	if _, ok := Match("item/a%zzb", routes); ok {
		t.Error("expected no match for invalid percent escape")
	}
}

func TestMatchChildren(t *testing.T) {
	routes := []*Route{
		{Path: "users", Children: []*Route{{Path: ":id"}}},
	}

	seg, ok := Match("users/7", routes)
	if !ok {
		t.Fatal("expected match")
	}
	if seg.Child == nil {
		t.Fatal("expected child segment")
	}
	if got := seg.Child.Params["id"]; got != "7" {
		t.Errorf("child params[id] = %q, want %q", got, "7")
	}
	if seg.Child.Parent != seg {
		t.Error("child parent backlink not installed")
	}

	// Parent pattern alone still matches with no remainder.
	seg, ok = Match("users", routes)
	if !ok {
		t.Fatal("expected parent-only match")
	}
	if seg.Child != nil {
		t.Error("expected no child segment for parent-only match")
	}

	// Remainder the children cannot claim fails the route.
	if _, ok := Match("users/7/extra", routes); ok {
		t.Error("expected no match with unconsumed remainder")
	}
}

func TestMatchIndexRoutePriority(t *testing.T) {
	index := &Route{Path: ""}
	named := &Route{Path: "about"}

	// A later sibling matching the full path beats the index route.
	seg, ok := Match("about", []*Route{index, named})
	if !ok {
		t.Fatal("expected match")
	}
	if seg.Route != named {
		t.Error("expected the named sibling to win over the index route")
	}

	// The empty path still resolves to the index route directly.
	seg, ok = Match("", []*Route{index, named})
	if !ok {
		t.Fatal("expected match")
	}
	if seg.Route != index {
		t.Error("expected the index route for the empty path")
	}
}

func TestMatchFirstFit(t *testing.T) {
	first := &Route{Path: "a/:x"}
	second := &Route{Path: "a/b"}

	seg, ok := Match("a/b", []*Route{first, second})
	if !ok {
		t.Fatal("expected match")
	}
	if seg.Route != first {
		t.Error("expected the earlier candidate to win, no best-match scoring")
	}
}

func TestMatchNestedIndexChild(t *testing.T) {
	routes := []*Route{
		{Path: "docs", Children: []*Route{{Path: "", Component: "docs-index"}}},
	}

	seg, ok := Match("docs", routes)
	if !ok {
		t.Fatal("expected match")
	}
	if seg.Child == nil || seg.Child.Route.Component != "docs-index" {
		t.Error("expected the index child to claim the empty remainder")
	}
}

func TestMatchOptionalBetweenLiterals(t *testing.T) {
	routes := []*Route{{Path: "docs/:version?/guide"}}

	seg, ok := Match("docs/guide", routes)
	if !ok {
		t.Fatal("expected match with absent middle optional")
	}
	if _, bound := seg.Params.Get("version"); bound {
		t.Error("expected version to be unbound")
	}

	seg, ok = Match("docs/v2/guide", routes)
	if !ok {
		t.Fatal("expected match with present middle optional")
	}
	if got := seg.Params["version"]; got != "v2" {
		t.Errorf("params[version] = %q, want %q", got, "v2")
	}
}

func TestMatchJoinRoundTrip(t *testing.T) {
	routes := []*Route{
		{Path: ""},
		{Path: "users", Children: []*Route{{Path: ":id"}, {Path: ":id/edit"}}},
		{Path: "docs/:version?"},
		{Path: "a", Children: []*Route{{Path: "b"}}},
	}

	paths := []string{"users", "users/7", "users/7/edit", "docs", "docs/v2", "a/b"}
	for _, p := range paths {
		seg, ok := Match(p, routes)
		if !ok {
			t.Errorf("Match(%q) failed", p)
			continue
		}
		if got := Join(seg); got != p {
			t.Errorf("Join(Match(%q)) = %q, want %q", p, got, p)
		}
	}
}
