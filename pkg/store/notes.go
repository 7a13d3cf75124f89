package store

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadNote returns the whole note file as text.
func ReadNote(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", openError(path, err)
	}
	if !utf8.Valid(b) {
		return "", &LoadError{Path: path, Kind: KindMalformed, Err: fmt.Errorf("%w: not valid UTF-8", errMalformed)}
	}
	return string(b), nil
}
