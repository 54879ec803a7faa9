package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreClosed indicates the collection store no longer accepts calls.
	ErrStoreClosed = errors.New("collection store closed")

	// ErrSerialization matches every stored-record error (unknown type, bad URL).
	// Such errors point at forward-incompatible or corrupted data.
	ErrSerialization = errors.New("invalid stored record")

	// ErrLockUnsupported indicates the platform has no advisory file locks.
	ErrLockUnsupported = errors.New("file locking not supported on this platform")
)

var errRelativeURL = errors.New("url is not absolute")

// IOError is a persistence backend failure (stat, read, write, mkdir).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LockError is a failure to acquire the cross-process lock.
type LockError struct {
	Path string
	Err  error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock %s: %v", e.Path, e.Err)
}

func (e *LockError) Unwrap() error { return e.Err }

// DecodeError indicates the stored document is not a valid container.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode collection sources: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownTypeError is a stored or supplied type tag that is not recognised.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown source type %q", e.Type)
}

// Is reports whether target is ErrSerialization.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrSerialization
}

// InvalidURLError is a stored or supplied URL that cannot be parsed.
type InvalidURLError struct {
	Value string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid source url %q: %v", e.Value, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSerialization.
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrSerialization
}
