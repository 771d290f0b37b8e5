// Package apperr defines the error kinds the core distinguishes at its
// boundary. Handlers map each kind to a transport status; nothing below the
// handler layer knows about HTTP.
package apperr

import "errors"

var (
	// ErrNotFound means no document matched the given id or filter.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the username is already taken. Detected by the
	// caller's lookup before insert, not enforced by the store.
	ErrConflict = errors.New("username already exists")

	// ErrMalformedID means the string is not a valid hex object id.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, reported uniformly.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token failure mode (bad signature,
	// wrong issuer or audience, expired) without distinguishing them.
	ErrInvalidToken = errors.New("token is not valid or has expired")

	// ErrInfrastructure means the store was unreachable, timed out, or
	// did not acknowledge a write.
	ErrInfrastructure = errors.New("infrastructure failure")
)
