package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Exit codes returned by the check-skip-env binary.
const (
	ExitOK         = 0 // no offending files
	ExitViolations = 1 // at least one file sets a skip or region variable
	ExitUsage      = 2 // missing FILE argument, unknown flag, bad flag value
	ExitFailure    = 3 // unreadable file, bad config, or panic
)

// UsageError reports a malformed invocation.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ViolationError is returned when the scan found offending files. The files have
// already been reported by the time it is returned.
type ViolationError struct {
	Files []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%d file(s) set terratest skip environment variables: %s",
		len(e.Files), strings.Join(e.Files, ", "))
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var violation *ViolationError
	if errors.As(err, &violation) {
		return ExitViolations
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}

// PrintError writes err to w the way the binary reports it. Violations print
// nothing because their diagnostics were written during the scan.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var violation *ViolationError
	if errors.As(err, &violation) {
		return
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "Error: %v\n", usage.Err)
		if usage.Usage != "" {
			fmt.Fprintf(w, "\n%s", usage.Usage)
		}
		return
	}
	fmt.Fprintf(w, "%s: %v\n", appName, err)
}
