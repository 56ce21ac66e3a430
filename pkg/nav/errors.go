package nav

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when no route at any level matches the
// requested path and no recovery queue redirected it.
type NotFoundError struct {
	// Path is the unmatched path, after base stripping.
	Path string
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("nav: no route matches %q", e.Path)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
