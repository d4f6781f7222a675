package regxml

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	d, err := dictxml.Decode(r)
//	if errors.Is(err, regxml.ErrDuplicateDefinition) {
//	    // two definitions collide on identity or symbol
//	}
var (
	// ErrDuplicateDefinition indicates a registry build found two colliding definitions.
	ErrDuplicateDefinition = errors.New("duplicate definition")

	// ErrDuplicateIdentity indicates two definitions share a normalized AUID.
	ErrDuplicateIdentity = wrapSentinel(ErrDuplicateDefinition, "duplicate AUID")

	// ErrDuplicateSymbol indicates two definitions share a symbol.
	ErrDuplicateSymbol = wrapSentinel(ErrDuplicateDefinition, "duplicate symbol")

	// ErrMalformedInput indicates interchange input violates the dictionary schema.
	ErrMalformedInput = errors.New("malformed dictionary input")

	// ErrInvalidSchemeURI indicates a scheme URI is empty, not ASCII or not a URI.
	ErrInvalidSchemeURI = wrapSentinel(ErrMalformedInput, "invalid scheme URI")

	// ErrDuplicateScheme indicates a collection already holds a dictionary for the scheme.
	ErrDuplicateScheme = errors.New("duplicate scheme")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound indicates a requested definition is absent. Registry lookups
	// never return it; command-line tools use it to report misses.
	ErrNotFound = errors.New("definition not found")
)

// sentinel is an error that also matches its parent with errors.Is.
type sentinel struct {
	parent error
	msg    string
}

func (s *sentinel) Error() string { return s.msg }
func (s *sentinel) Unwrap() error { return s.parent }

func wrapSentinel(parent error, msg string) error {
	return &sentinel{parent: parent, msg: msg}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDuplicateDefinition), errors.Is(err, ErrDuplicateScheme):
		return ExitDuplicateDefinition
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
