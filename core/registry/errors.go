package registry

import "errors"

var (
	// Registration errors
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrEmptyName      = errors.New("empty route name")
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrDuplicateParam = errors.New("duplicate parameter name")

	// Resolution errors
	ErrNotFound = errors.New("route not found")

	// Reverse lookup errors
	ErrUnknownRoute = errors.New("unknown route")
	ErrMissingParam = errors.New("missing route parameter")
)
