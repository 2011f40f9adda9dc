package scan

import (
	"fmt"
	"path/filepath"
)

// ScanOptions controls scanner behavior.
type ScanOptions struct {
	Files   []string
	Exclude []string // glob patterns matched against the path and its base name
}

// ScanResult holds all findings from a scan.
type ScanResult struct {
	FilesChecked []string  `json:"files_checked"`
	Findings     []Finding `json:"findings"`
	Skipped      []string  `json:"skipped"`
}

// Failed reports whether any file failed the check.
func (r *ScanResult) Failed() bool {
	return len(r.Findings) > 0
}

// Scan checks every file in opts.Files in order. Each path is checked at most once and
// findings keep the order in which paths first appear. The first file that cannot be
// read aborts the scan and no partial result is returned.
func Scan(opts ScanOptions) (*ScanResult, error) {
	for _, pattern := range opts.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	result := &ScanResult{}
	seen := make(map[string]bool, len(opts.Files))

	for _, path := range opts.Files {
		if seen[path] {
			continue
		}
		seen[path] = true

		if excluded(path, opts.Exclude) {
			result.Skipped = append(result.Skipped, path)
			continue
		}

		finding, err := CheckFile(path)
		if err != nil {
			return nil, err
		}
		result.FilesChecked = append(result.FilesChecked, path)
		if finding != nil {
			result.Findings = append(result.Findings, *finding)
		}
	}

	return result, nil
}

func excluded(path string, patterns []string) bool {
	base := filepath.Base(path)
	slashed := filepath.ToSlash(path)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, slashed); ok {
			return true
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}
