package service

import "errors"

var (
	// ErrUnauthorized means the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransport means the call did not complete (network, timeout, bad body).
	ErrTransport = errors.New("connection error")

	// ErrRejected means the server answered with any other failure status.
	ErrRejected = errors.New("request rejected")
)

// ErrorKind classifies remote failures.
type ErrorKind int

const (
	// KindNone is returned for a nil error.
	KindNone ErrorKind = iota
	// KindTransport is a network or transport failure.
	KindTransport
	// KindAuth is an authentication rejection.
	KindAuth
	// KindRejected is any other server-side refusal.
	KindRejected
)

// Kind maps err onto the remote failure taxonomy.
// Unknown errors count as transport failures: the call's outcome is unknown.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnauthorized):
		return KindAuth
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRejected):
		return KindRejected
	default:
		return KindTransport
	}
}
