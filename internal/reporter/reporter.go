// Package reporter renders scan results as text diagnostics, JSON or SARIF.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gruntwork-io/pre-commit/internal/scan"
)

// Formatter renders a scan result to w.
type Formatter interface {
	Format(w io.Writer, result *scan.ScanResult) error
}

// Report formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Formats lists the accepted values for New.
var Formats = []string{FormatText, FormatJSON, FormatSARIF}

// Options configures the formatter returned by New.
type Options struct {
	Color       bool
	ToolName    string
	ToolVersion string
}

// New returns the formatter for the named format.
func New(format string, opts Options) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextReporter(opts.Color), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatSARIF:
		return NewSARIFReporter(opts.ToolName, opts.ToolVersion), nil
	default:
		return nil, fmt.Errorf("unknown format %q (use %s)", format, strings.Join(Formats, ", "))
	}
}
