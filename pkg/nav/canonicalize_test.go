package nav

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input   string
		path    string
		query   string
		changed bool
	}{
		{"users/7", "users/7", "", false},
		{"/users/7", "users/7", "", true},
		{"users/7/", "users/7", "", true},
		{"users//7", "users/7", "", true},
		{"users/7?tab=2", "users/7", "tab=2", false},
		{"", "", "", false},
		{"/", "", "", true},
	}

	for _, tt := range tests {
		path, query, changed, err := Canonicalize(tt.input)
		if err != nil {
			t.Errorf("Canonicalize(%q) error: %v", tt.input, err)
			continue
		}
		if path != tt.path || query != tt.query || changed != tt.changed {
			t.Errorf("Canonicalize(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.input, path, query, changed, tt.path, tt.query, tt.changed)
		}
	}
}

func TestCanonicalizeRejects(t *testing.T) {
	if _, _, _, err := Canonicalize(`users\7`); err != ErrBackslashInPath {
		t.Errorf("backslash: err = %v, want ErrBackslashInPath", err)
	}
	if _, _, _, err := Canonicalize("users/\x007"); err != ErrNullByteInPath {
		t.Errorf("null byte: err = %v, want ErrNullByteInPath", err)
	}
}
