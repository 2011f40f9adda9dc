package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gruntwork-io/pre-commit/internal/scan"
)

// JSONReporter writes the scan result as indented JSON.
type JSONReporter struct{}

func NewJSONReporter() *JSONReporter { return &JSONReporter{} }

func (r *JSONReporter) Format(w io.Writer, result *scan.ScanResult) error {
	// empty lists encode as [] rather than null
	out := scan.ScanResult{
		FilesChecked: nonNil(result.FilesChecked),
		Findings:     result.Findings,
		Skipped:      nonNil(result.Skipped),
	}
	if out.Findings == nil {
		out.Findings = []scan.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
