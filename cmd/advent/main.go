// Command advent solves one task of one puzzle day.
//
//	advent [options] DAY TASK
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/ctxlog"
	"github.com/katalvlaran/advent/internal/input"
	"github.com/katalvlaran/advent/puzzle"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// main is the entrypoint for the advent command.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the selected task and prints the answer to
// stdout. Usage problems are reported as *ExitError with code 2.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("advent", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
advent - path-search and simulation puzzle solvers.

Usage:
  advent [options] DAY TASK

Arguments:
  DAY   puzzle day (12, 13, 14 or 15)
  TASK  task of the day (1 or 2)

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	inputFlag := flagSet.String("input", "", "Input file ('.zst' is decompressed, '-' reads stdin). Default: inputs/DD.txt[.zst].")
	sampleFlag := flagSet.Bool("sample", false, "Solve the embedded example and check the expected answer.")
	logLevelFlag := flagSet.String("log-level", "", "Override the logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Override the log format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() != 2 {
		flagSet.Usage()
		return &ExitError{Code: 2, Message: fmt.Sprintf("expected DAY and TASK, got %d arguments", flagSet.NArg())}
	}
	key, err := puzzle.ParseKey(flagSet.Arg(0), flagSet.Arg(1))
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.Log.Format = strings.ToLower(*logFormatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger := ctxlog.New(cfg.Log.Level, cfg.Log.Format, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	if *sampleFlag {
		return solveSample(ctx, key, stdout)
	}

	path := *inputFlag
	if path == "" {
		if path, err = input.Locate("inputs", key.Day); err != nil {
			return err
		}
	}
	text, err := input.Load(path, stdin)
	if err != nil {
		return err
	}
	logger.Debug("Input loaded.", "path", path, "bytes", len(text))

	answer, err := puzzle.Solve(ctx, key, text, cfg.Params())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, answer)
	return nil
}

// solveSample runs key on its embedded example and fails on a wrong answer.
func solveSample(ctx context.Context, key puzzle.Key, stdout io.Writer) error {
	s, err := puzzle.SampleFor(key.Day)
	if err != nil {
		return err
	}
	answer, err := puzzle.Solve(ctx, key, s.Input, s.Params)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, answer)

	if want := s.Want[key.Task-1]; answer != want {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%v sample: got %s, want %s", key, answer, want)}
	}
	return nil
}
