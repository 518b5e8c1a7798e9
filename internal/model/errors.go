package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures reading or writing files.
	ErrIO = errors.New("i/o failure")
	// ErrConfiguration marks invalid settings detected before or while listing files.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrMissingInDocs is returned when a documentation file has no region for an id.
	ErrMissingInDocs = errors.New("snippet missing in documentation")
)

// StructuralErrorKind classifies tooling misuse found while scanning.
type StructuralErrorKind string

const (
	// KindDuplicateID is a second marker pair or doc region for the same id.
	KindDuplicateID StructuralErrorKind = "duplicate_id"
	// KindUnterminated is an opening marker or fence that is never closed.
	KindUnterminated StructuralErrorKind = "unterminated"
	// KindMalformed is an anchor that is not followed by a fenced block.
	KindMalformed StructuralErrorKind = "malformed"
)

// StructuralError is local to one file and one id. It is collected into the
// report instead of aborting the run.
type StructuralError struct {
	Kind    StructuralErrorKind `json:"kind" yaml:"kind"`
	ID      SnippetID           `json:"id" yaml:"id"`
	Path    Path                `json:"path" yaml:"path"`
	Line    int                 `json:"line" yaml:"line"`
	Message string              `json:"message" yaml:"message"`
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("%s at %s:%d", e.Message, e.Path, e.Line)
}

// Status returns the report status matching the error kind.
func (e StructuralError) Status() Status {
	switch e.Kind {
	case KindDuplicateID:
		return StatusDuplicateID
	case KindUnterminated:
		return StatusUnterminated
	case KindMalformed:
		return StatusMalformed
	}

	return StatusMalformed
}
