package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gruntwork-io/pre-commit/internal/scan"
)

// Header is the first diagnostic line written when any file fails the check.
const Header = "Found files with os.Setenv calls setting terratest SKIP environment variables."

// TextReporter writes one diagnostic line per offending file plus a summary.
// It writes nothing for a clean result.
type TextReporter struct {
	color bool
}

// NewTextReporter creates a text reporter. color enables ANSI styling.
func NewTextReporter(color bool) *TextReporter {
	return &TextReporter{color: color}
}

type textStyles struct {
	header lipgloss.Style
	path   lipgloss.Style
	dim    lipgloss.Style
}

func newTextStyles(w io.Writer, color bool) textStyles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return textStyles{
		header: base.Bold(true).Foreground(lipgloss.Color("9")), // red
		path:   base.Bold(true),
		dim:    base.Foreground(lipgloss.Color("8")), // gray
	}
}

func (r *TextReporter) Format(w io.Writer, result *scan.ScanResult) error {
	if !result.Failed() {
		return nil
	}
	st := newTextStyles(w, r.color)

	if _, err := fmt.Fprintln(w, st.header.Render(Header)); err != nil {
		return err
	}
	for _, f := range result.Findings {
		loc := fmt.Sprintf("%s:%d", f.Path, f.Line)
		if _, err := fmt.Fprintf(w, "- %s: %s\n", st.path.Render(loc), st.dim.Render(f.Text)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d of %d files failed the check\n", len(result.Findings), len(result.FilesChecked))
	return err
}
