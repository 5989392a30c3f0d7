package services

import "errors"

// Failure kinds surfaced to handlers. Each maps to a distinct HTTP status,
// so none of them may be collapsed into another.
var (
	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNoSuchAccount indicates no account exists for the given email.
	ErrNoSuchAccount = errors.New("no account with that email")
	// ErrBadCredentials indicates the account exists but the password is wrong.
	ErrBadCredentials = errors.New("wrong password")
	// ErrForbidden indicates the movie exists but belongs to another user.
	ErrForbidden = errors.New("movie belongs to another user")
	// ErrMovieNotFound indicates no movie exists with the given ID.
	ErrMovieNotFound = errors.New("movie not found")
)
