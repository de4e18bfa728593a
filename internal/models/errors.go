package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidInput ErrorType = iota
	ErrMetadata
	ErrManifestGen
	ErrFileOp
	ErrFetch
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrMetadata:
		return "Metadata"
	case ErrManifestGen:
		return "ManifestGen"
	case ErrFileOp:
		return "FileOp"
	case ErrFetch:
		return "Fetch"
	default:
		return "Unknown"
	}
}

// ReleaseError represents an error during a release tooling run
type ReleaseError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *ReleaseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *ReleaseError) Unwrap() error {
	return e.Err
}
