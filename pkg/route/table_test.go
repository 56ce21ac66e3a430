package route

import "testing"

func TestTableAddStripsChildren(t *testing.T) {
	table := NewTable()

	child := &Route{Path: ":id"}
	if err := table.Add(child); err != nil {
		t.Fatalf("Add(child) error: %v", err)
	}

	parent := &Route{Path: "users", Children: []*Route{child}}
	if err := table.Add(parent); err != nil {
		t.Fatalf("Add(parent) error: %v", err)
	}

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	if table.Routes()[0] != parent {
		t.Error("expected only the parent to remain as a root")
	}
}

func TestTableAddIdempotent(t *testing.T) {
	table := NewTable()
	r := &Route{Path: "a"}

	if err := table.Add(r); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := table.Add(r); err != nil {
		t.Fatalf("second Add error: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestTableAddValidates(t *testing.T) {
	table := NewTable()

	if err := table.Add(&Route{Path: "a/:"}); err == nil {
		t.Error("expected error for unnamed parameter")
	}
	if err := table.Add(&Route{Path: "a", Children: []*Route{nil}}); err == nil {
		t.Error("expected error for nil child")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after rejected adds", table.Len())
	}
}

func TestTableDelete(t *testing.T) {
	table := NewTable()
	a := &Route{Path: "a"}
	b := &Route{Path: "b"}
	table.Add(a)
	table.Add(b)

	if !table.Delete(a) {
		t.Error("Delete(a) = false, want true")
	}
	if table.Delete(a) {
		t.Error("second Delete(a) = true, want false")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestTableClear(t *testing.T) {
	table := NewTable()
	table.Add(&Route{Path: "a"})
	table.Clear()

	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
	if _, ok := table.Match("a"); ok {
		t.Error("expected no match after Clear")
	}
}

func TestTableIterationOrder(t *testing.T) {
	table := NewTable()
	routes := []*Route{{Path: "a"}, {Path: "b"}, {Path: "c"}}
	for _, r := range routes {
		table.Add(r)
	}

	got := table.Routes()
	for i, r := range routes {
		if got[i] != r {
			t.Fatalf("Routes()[%d] = %v, want %v", i, got[i], r)
		}
	}
}
