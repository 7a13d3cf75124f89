package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Kind classifies why a data file could not be loaded.
type Kind int

const (
	KindMissing Kind = iota
	KindUnreadable
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindUnreadable:
		return "unreadable"
	case KindMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LoadError is returned by every loader in this package.
type LoadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or false if err is not a *LoadError.
func KindOf(err error) (Kind, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind, true
	}
	return 0, false
}

func openError(path string, err error) error {
	kind := KindUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindMissing
	}
	return &LoadError{Path: path, Kind: kind, Err: err}
}

func decodeError(path string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, errMalformed):
		return &LoadError{Path: path, Kind: KindMalformed, Err: err}
	default:
		return &LoadError{Path: path, Kind: KindUnreadable, Err: err}
	}
}

var errMalformed = errors.New("malformed value")
