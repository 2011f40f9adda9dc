package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gruntwork-io/pre-commit/internal/config"
	"github.com/gruntwork-io/pre-commit/internal/reporter"
)

const appName = "check-skip-env"

// Version and Commit are set via LDFLAGS at build time.
var (
	Version = "dev"
	Commit  = "none"
)

type options struct {
	verbose    bool
	configFile string
	format     string
	output     string
	color      string
	exclude    []string
	watch      bool
}

func NewRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " FILE [FILE ...]",
		Short: "Fail the commit if Go tests set terratest SKIP_ or TERRATEST_REGION variables",
		Long: `check-skip-env scans the given Go source files for indented, uncommented
os.Setenv("SKIP_...") and os.Setenv("TERRATEST_REGION"...) calls. Those calls are
handy while iterating on a terratest test locally but must not be committed.

Exit Codes:
  0  - No offending files
  1  - At least one file sets a skip or region variable
  2  - CLI usage error (no FILE, invalid flags)
  3  - A file could not be read, or the config file is invalid`,
		Version:       fmt.Sprintf("%s (commit: %s, go: %s)", Version, Commit, runtime.Version()),
		Args:          requireFiles,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err, Usage: cmd.UsageString()}
	})

	f := root.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&opts.configFile, "config", config.DefaultPath, "path to config file")
	f.StringVar(&opts.format, "format", reporter.FormatText, "report format: text, json, sarif")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.color, "color", config.ColorAuto, "colorize diagnostics: auto, always, never")
	f.StringSliceVar(&opts.exclude, "exclude", nil, "glob pattern of files to skip (repeatable)")
	f.BoolVarP(&opts.watch, "watch", "w", false, "keep running and re-check files when they change")

	return root
}

// requireFiles validates that at least one FILE argument is provided.
func requireFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &UsageError{
			Err:   errors.New("missing required argument: FILE"),
			Usage: cmd.UsageString(),
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveSettings merges the config file with flags; explicitly set flags win.
func resolveSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	s, err := config.LoadSettings(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") || s.Format == "" {
		s.Format = opts.format
	}
	if flags.Changed("output") {
		s.Output = opts.output
	}
	if flags.Changed("color") || s.Color == "" {
		s.Color = opts.color
	}
	if flags.Changed("exclude") {
		s.Exclude = append(s.Exclude, opts.exclude...)
	}
	s.Format = strings.ToLower(s.Format)

	if err := s.Validate(); err != nil {
		return nil, &UsageError{Err: err, Usage: cmd.UsageString()}
	}
	return s, nil
}

// useColor decides whether diagnostics written to w are styled.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
