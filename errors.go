package glxform

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when caller-supplied values violate the
	// precondition of a transform builder (equal clip planes, zero-length
	// axis, degenerate look-at basis, ...).
	ErrDomain = errors.New("domain error")

	// ErrSingular is returned when inverting a matrix whose determinant is
	// zero. It wraps ErrDomain.
	ErrSingular = fmt.Errorf("singular matrix: %w", ErrDomain)
)

func domainErr(op, format string, args ...any) error {
	return fmt.Errorf("glxform: %s: %w: %s", op, ErrDomain, fmt.Sprintf(format, args...))
}
