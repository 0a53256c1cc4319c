package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mini-rodalies-3d/bikeshare/internal/catalog"
	"github.com/mini-rodalies-3d/bikeshare/internal/config"
	"github.com/mini-rodalies-3d/bikeshare/internal/dataset"
	"github.com/mini-rodalies-3d/bikeshare/internal/logger"
	"github.com/mini-rodalies-3d/bikeshare/internal/prompt"
	"github.com/mini-rodalies-3d/bikeshare/internal/report"
	"github.com/mini-rodalies-3d/bikeshare/internal/session"
)

// exitError carries the process exit code for a failure that run has
// already reported on errOut
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, logging and the interactive session.
// Stdout carries only prompts and reports; logs go to errOut.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	config.LoadEnvFiles(".")
	cfg := config.Load()

	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprint(errOut, `
bikeshare - explore US bikeshare trip data interactively.

Usage:
  bikeshare [options]

Options:
`)
		fs.PrintDefaults()
	}
	dataDir := fs.String("data-dir", cfg.DataDir, "Directory containing the city dataset files.")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: DEBUG, INFO, WARN or ERROR.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return &exitError{code: 2, err: err}
	}

	log := logger.New(errOut, *logLevel)
	log.Debug("config loaded", "data_dir", *dataDir, "log_level", *logLevel, "overrides", len(cfg.CityFiles))

	loader := dataset.NewLoader(catalog.New(*dataDir, cfg.CityFiles), log)
	s := session.New(prompt.New(in, out), loader, report.All(), out, log)

	if err := s.Run(context.Background()); err != nil {
		log.Error("session failed", "error", err)
		return err
	}
	return nil
}
