package services

import "errors"

// Recoverable failures surfaced to controllers. Each maps to a redirect plus
// a flash notice at the request boundary.
var (
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	ErrUnknownEmail     = errors.New("no account with this email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrValidation       = errors.New("missing required field")
	ErrNotFound         = errors.New("post not found")
	ErrForbidden        = errors.New("only the owner may modify this post")
)
