package authz

import "errors"

var (
	// ErrForbidden: valid identity, insufficient grant. Maps to 403.
	ErrForbidden = errors.New("forbidden")

	// ErrPageNotConfigured: a route gate references a page that is missing
	// from the pages table. This is a seed/deploy defect, not a user error.
	// Maps to 500 and is logged distinctly from ordinary denials.
	ErrPageNotConfigured = errors.New("page not configured")

	// ErrNotOwner: valid identity, but the target row belongs to another
	// user. Maps to 403 on mutations.
	ErrNotOwner = errors.New("record owned by another user")
)
