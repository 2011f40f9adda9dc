package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Match describes the first forbidden os.Setenv call found in a file.
type Match struct {
	Line     int    `json:"line"`
	Variable string `json:"variable"` // "SKIP_" or "TERRATEST_REGION"
	Text     string `json:"text"`
}

// FindForbiddenSetenv reads r line by line and returns the first line that sets a
// terratest skip or region variable. It returns nil, nil when no line matches.
// Lines of any length are read and reading stops at the first match.
func FindForbiddenSetenv(r io.Reader) (*Match, error) {
	br := bufio.NewReader(r)

	lineNum := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNum+1, err)
		}
		if line == "" && err != nil {
			return nil, nil
		}
		lineNum++

		line = strings.TrimRight(line, "\r\n")
		if m := setenvPattern.FindStringSubmatch(line); m != nil {
			return &Match{
				Line:     lineNum,
				Variable: m[1],
				Text:     strings.TrimSpace(line),
			}, nil
		}
		if err != nil {
			return nil, nil
		}
	}
}

// HasForbiddenSetenv reports whether the file at path contains an indented,
// uncommented os.Setenv call for a SKIP_ or TERRATEST_REGION variable.
func HasForbiddenSetenv(path string) (bool, error) {
	m, err := findInFile(path)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

func findInFile(path string) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := FindForbiddenSetenv(f)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return m, nil
}
