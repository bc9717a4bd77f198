package pugrest

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// ErrUnknownVariant is returned when a string does not match any
// enumerated value of its axis (domain, namespace, operation, output).
var ErrUnknownVariant = errors.New("matching variant not found")

// InvalidInputError reports a malformed request specification. It is
// always raised before any network traffic happens.
type InvalidInputError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return "invalid request: " + e.Reason
}

// errorMode controls how locally constructed errors behave. It is read
// from the environment exactly once, on first error construction, and
// never re-read for the lifetime of the process.
type errorMode int

const (
	errModeNormal errorMode = iota
	errModePanic
	errModeBacktrace
)

var loadErrorMode = sync.OnceValue(func() errorMode {
	if os.Getenv("PUBCHEM_PANIC_ON_ERR") == "1" {
		return errModePanic
	}
	if os.Getenv("PUBCHEM_BACKTRACE_IN_ERR") == "1" {
		return errModeBacktrace
	}
	return errModeNormal
})

// invalidInput builds an InvalidInputError honoring the process-wide
// error mode.
func invalidInput(format string, args ...any) error {
	reason := fmt.Sprintf(format, args...)
	switch loadErrorMode() {
	case errModePanic:
		panic("invalid request: " + reason)
	case errModeBacktrace:
		reason = reason + "\n" + string(debug.Stack())
	}
	return &InvalidInputError{Reason: reason}
}
