package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey indicates an empty storage key was provided.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey indicates the key is absolute, uses backslashes, or
	// contains a traversal segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)

// ValidateKey checks that key is a relative, forward-slash blob name
// without "..". Every System method applies it before calling the backend.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return ErrEmptyKey
	case strings.HasPrefix(key, "/"), strings.Contains(key, `\`), strings.Contains(key, ".."):
		return ErrInvalidKey
	}
	return nil
}
