package data

import "errors"

// Standard namespace errors. Callers should match against these with
// errors.Is; the narrow variants below wrap their category so both
// granularities work.
var (
	// Argument and structure errors
	ErrInvalidArgument = errors.New("namespace: invalid argument")
	ErrTypeMismatch    = errors.New("namespace: node type mismatch")

	// Lookup errors
	ErrNotFound = errors.New("namespace: node not found")

	// Resolution errors
	ErrUnavailable = errors.New("namespace: resource unavailable")
)

// Narrow wrappers around ErrInvalidArgument for common failure shapes.
var (
	ErrInvalidPath     = wrap("namespace: invalid path detected", ErrInvalidArgument)
	ErrInvalidVersion  = wrap("namespace: invalid resource version", ErrInvalidArgument)
	ErrInvalidManifest = wrap("namespace: invalid package manifest", ErrInvalidArgument)
	ErrInvalidRoot     = wrap("namespace: root node must be a directory", ErrInvalidArgument)
)

type wrappedError struct {
	msg  string
	base error
}

func wrap(msg string, base error) error {
	return &wrappedError{msg: msg, base: base}
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.base
}
