package nav

import (
	"errors"
	"strings"
)

// Path canonicalization errors.
var (
	ErrBackslashInPath = errors.New("nav: path contains backslash")
	ErrNullByteInPath  = errors.New("nav: path contains null byte")
)

// Canonicalize normalizes a navigation target before matching.
//
// The canonical form is the one the matcher and Join produce: no leading
// or trailing slash and no duplicate slashes. The input may include a
// query string, which is split off and preserved unmodified.
//
// Paths containing a backslash or a NUL byte are rejected.
func Canonicalize(input string) (path, query string, changed bool, err error) {
	path, query, _ = strings.Cut(input, "?")

	// SECURITY: reject backslash and NUL before they reach the matcher.
	if strings.Contains(path, "\\") {
		return "", "", false, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") {
		return "", "", false, ErrNullByteInPath
	}

	original := path

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")

	return path, query, path != original, nil
}
