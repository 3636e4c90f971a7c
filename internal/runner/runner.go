// Package runner orchestrates the parse -> format -> output pipeline.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/donaldgifford/prettygql"
	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/pkg/diff"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior.
type Options struct {
	Files      []string
	Check      bool
	Diff       bool
	Write      bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run executes the format pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	log := newLogger(opts)
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "prettygql: %v\n", err)
		return ExitError
	}

	if len(opts.Files) == 0 {
		return runStdin(opts, cfg, log)
	}

	exitCode := ExitOK
	for _, path := range opts.Files {
		code := runFile(opts, cfg, log, path)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

// newLogger builds the zap logger used for per-file progress output.
// Quiet mode installs a no-op core so log calls cost nothing and emit
// nothing; verbose mode logs one line per file at info level to
// stderr; the default level logs nothing but errors still surface
// through writeErr, not the logger.
func newLogger(opts *Options) *zap.Logger {
	if opts.Quiet || !opts.Verbose {
		return zap.NewNop()
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(opts.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

func runStdin(opts *Options, cfg *config.Config, log *zap.Logger) int {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "prettygql: reading stdin: %v\n", err)
		return ExitError
	}

	input := string(src)
	output, err := prettygql.FormatText(input, cfg)
	if err != nil {
		reportFormatError(opts.Stderr, "<stdin>", err)
		return ExitError
	}

	log.Info("formatted", zap.String("file", "<stdin>"))

	if opts.Check {
		if input != output {
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diff.Unified("<stdin>", input, output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	writeOut(opts.Stdout, output)
	return ExitOK
}

func runFile(opts *Options, cfg *config.Config, log *zap.Logger, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		writeErr(opts.Stderr, "prettygql: %v\n", err)
		return ExitError
	}

	input := string(src)
	output, err := prettygql.FormatText(input, cfg)
	if err != nil {
		reportFormatError(opts.Stderr, path, err)
		return ExitError
	}

	log.Info("formatted", zap.String("file", path))

	if opts.Check {
		if input != output {
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s\n", path)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diff.Unified(path, input, output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	if !opts.Write {
		writeOut(opts.Stdout, output)
		return ExitOK
	}

	if input == output {
		return ExitOK
	}

	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		writeErr(opts.Stderr, "prettygql: writing %s: %v\n", path, err)
		return ExitError
	}

	if opts.Verbose && !opts.Quiet {
		writeErr(opts.Stderr, "%s\n", path)
	}

	return ExitOK
}

// reportFormatError distinguishes the two error families prettygql
// can return so the message points at the right fix: bad input
// syntax versus a bad configuration value. Anything else is an
// internal error in the formatter itself.
func reportFormatError(w io.Writer, path string, err error) {
	var syn *prettygql.SyntaxError
	var cfgErr *prettygql.ConfigError
	switch {
	case errors.As(err, &syn):
		writeErr(w, "%s: syntax error: %v\n", path, syn.Unwrap())
	case errors.As(err, &cfgErr):
		writeErr(w, "prettygql: %v\n", cfgErr)
	default:
		writeErr(w, "%s: %v\n", path, err)
	}
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
