package scan

import (
	"fmt"
	"regexp"
)

// RuleID identifies the forbidden-setenv check in machine-readable reports.
const RuleID = "forbidden-setenv"

// setenvPattern only matches calls that start an indented line, so commented
// calls and calls at column 0 are left alone.
var setenvPattern = regexp.MustCompile(`^\s+os\.Setenv\("(SKIP_|TERRATEST_REGION)`)

// Finding is a file that failed the check, located at its first offending line.
type Finding struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Variable string `json:"variable"`
	Text     string `json:"text"`
}

// Message returns the human-readable description used by reports.
func (f *Finding) Message() string {
	return fmt.Sprintf("uncommented os.Setenv(\"%s...\") call at line %d", f.Variable, f.Line)
}

// CheckFile scans a single file. It returns nil when the file is clean.
func CheckFile(path string) (*Finding, error) {
	m, err := findInFile(path)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return &Finding{
		Path:     path,
		Line:     m.Line,
		Variable: m.Variable,
		Text:     m.Text,
	}, nil
}
