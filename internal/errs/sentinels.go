// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRecipeNotFound indicates the recipe id does not resolve in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrValidation indicates malformed caller input rejected before any I/O.
	ErrValidation = errors.New("validation")
)
