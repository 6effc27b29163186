// Package errors provides the typed failures of the GABC to Volpiano converter.
//
// Every error type unwraps to one of the sentinels below, so callers can tell
// the failure kinds apart with errors.Is without inspecting partial output.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds of a conversion.
var (
	// ErrMissingClef indicates a pitched event appeared before any clef.
	ErrMissingClef = errors.New("missing clef")
	// ErrUnrepresentablePitch indicates a pitch has no Volpiano character.
	ErrUnrepresentablePitch = errors.New("unrepresentable pitch")
	// ErrContract indicates a structural violation in the parse tree or an
	// incomplete lookup table.
	ErrContract = errors.New("contract violation")
	// ErrInvalidInput indicates invalid input or a syntax error.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a file or resource was not found.
	ErrNotFound = errors.New("not found")
)

// MissingClefError is returned when a note, liquescent or alteration is
// encountered before the first clef of the chant.
type MissingClefError struct {
	Kind     string // Event kind (e.g., "note", "alteration")
	Position string // Staff position of the offending event
}

func (e *MissingClefError) Error() string {
	return fmt.Sprintf("cannot determine the pitch of %s %q without clef", e.Kind, e.Position)
}

func (e *MissingClefError) Unwrap() error {
	return ErrMissingClef
}

// PitchError is returned when a resolved pitch has no entry in the Volpiano
// table of the requested flavor.
type PitchError struct {
	Pitch    int    // Resolved MIDI pitch
	Flavor   string // Table flavor (plain, liquescent, flat, natural)
	Clef     string // Active clef, if known
	Position string // Staff position, if known
}

func (e *PitchError) Error() string {
	if e.Clef != "" {
		return fmt.Sprintf("pitch %d (position %q, clef %s) has no %s volpiano character",
			e.Pitch, e.Position, e.Clef, e.Flavor)
	}
	return fmt.Sprintf("pitch %d has no %s volpiano character", e.Pitch, e.Flavor)
}

func (e *PitchError) Unwrap() error {
	return ErrUnrepresentablePitch
}

// ContractError represents a structural violation found while flattening
// the parse tree, such as a syllable without music or an unmapped token.
type ContractError struct {
	Node    string // Grammar node (e.g., "syllable", "barline")
	Value   string // Offending value, if any
	Line    int    // Source line, 0 if unknown
	Column  int    // Source column, 0 if unknown
	Message string // Human-readable detail
}

func (e *ContractError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Node, e.Message)
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Node, e.Value, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, msg)
	}
	return msg
}

func (e *ContractError) Unwrap() error {
	return ErrContract
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a syntax error reported by the GABC grammar.
type ParseError struct {
	Format  string // Format being parsed (e.g., "gabc", "gabc body")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Unwrap returns both the grammar error and ErrInvalidInput.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Err, ErrInvalidInput}
	}
	return []error{ErrInvalidInput}
}

// NewContract creates a ContractError without position information.
func NewContract(node, value, message string) *ContractError {
	return &ContractError{
		Node:    node,
		Value:   value,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError wrapping the grammar error.
func NewParse(format, path string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
