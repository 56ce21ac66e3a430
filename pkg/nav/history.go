package nav

// History is the pipeline's view of the history adapter. It owns the
// base-path prefixing rules and the actual push/replace mechanics; the
// pipeline only decides when a commit happens.
type History interface {
	// Rebase prefixes the base href onto path (prefix true) or strips
	// the longest shared leading segment run (prefix false).
	Rebase(path string, prefix bool) string

	// Commit records a committed navigation. The path is the visible
	// URL, already rebased. With replace true the current entry is
	// overwritten instead of pushed.
	Commit(state *State, path string, replace bool) error
}
