package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gruntwork-io/pre-commit/internal/config"
	"github.com/gruntwork-io/pre-commit/internal/reporter"
	"github.com/gruntwork-io/pre-commit/internal/scan"
	"github.com/gruntwork-io/pre-commit/internal/watch"
)

// checker runs one scan and reports it. It is reused for every rescan in watch mode.
type checker struct {
	files    []string
	settings *config.Settings
	log      *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
	text     reporter.Formatter
	report   reporter.Formatter // nil when the text diagnostics on stderr are the only output
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	stderr := cmd.ErrOrStderr()
	log := newLogger(stderr, opts.verbose)

	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	log.Debug("settings resolved", "config", opts.configFile, "format", settings.Format,
		"output", settings.Output, "exclude", settings.Exclude)

	color := useColor(settings.Color, stderr)
	c := &checker{
		files:    args,
		settings: settings,
		log:      log,
		stdout:   cmd.OutOrStdout(),
		stderr:   stderr,
		text:     reporter.NewTextReporter(color),
	}

	// text diagnostics always go to stderr; other formats and --output get a second report
	if settings.Format != reporter.FormatText || settings.Output != "" {
		c.report, err = reporter.New(settings.Format, reporter.Options{
			Color:       false,
			ToolName:    appName,
			ToolVersion: Version,
		})
		if err != nil {
			return &UsageError{Err: err, Usage: cmd.UsageString()}
		}
	}

	if !opts.watch {
		return c.check()
	}
	return c.watch(cmd.Context())
}

// check scans every file once and returns a *ViolationError when any file fails.
func (c *checker) check() error {
	c.log.Debug("checking files", "count", len(c.files))

	result, err := scan.Scan(scan.ScanOptions{
		Files:   c.files,
		Exclude: c.settings.Exclude,
	})
	if err != nil {
		return err
	}
	for _, path := range result.Skipped {
		c.log.Debug("excluded file", "file", path)
	}
	c.log.Debug("check complete", "checked", len(result.FilesChecked), "failed", len(result.Findings))

	if err := c.text.Format(c.stderr, result); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	if err := c.writeReport(result); err != nil {
		return err
	}

	if !result.Failed() {
		return nil
	}
	failed := make([]string, 0, len(result.Findings))
	for _, f := range result.Findings {
		failed = append(failed, f.Path)
	}
	return &ViolationError{Files: failed}
}

func (c *checker) writeReport(result *scan.ScanResult) error {
	if c.report == nil {
		return nil
	}

	w := c.stdout
	if c.settings.Output != "" {
		f, err := os.Create(c.settings.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := c.report.Format(w, result); err != nil {
		return fmt.Errorf("write %s report: %w", c.settings.Format, err)
	}
	return nil
}

// watch checks once, then rechecks on every change until interrupted. The
// returned error reflects the last check.
func (c *checker) watch(parent context.Context) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	last := c.check()
	if ExitCode(last) == ExitFailure {
		c.log.Error("check failed", "error", last)
	}

	w, err := watch.New(watch.Config{
		Files:    c.files,
		Debounce: c.settings.WatchDebounce,
		Logger:   c.log,
		OnChange: func(context.Context) {
			last = c.check()
			if ExitCode(last) == ExitFailure {
				c.log.Error("check failed", "error", last)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("init watch: %w", err)
	}

	if err := w.Run(ctx); err != nil {
		return err
	}
	return last
}
