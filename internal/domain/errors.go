package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrEmptyReference    = errors.New("empty reference")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

// LoadError represents a failure to load or lay out a document
type LoadError struct {
	Op  string // Operation: "read", "fetch", "parse", etc.
	Ref string // Document reference
	Err error  // Underlying error
}

func (e *LoadError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("load %s [%s]: %v", e.Op, e.Ref, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// OpenError represents a failure to hand a reference to the system browser
type OpenError struct {
	URL string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open [%s]: %v", e.URL, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
