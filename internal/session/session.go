package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mini-rodalies-3d/bikeshare/internal/logger"
	"github.com/mini-rodalies-3d/bikeshare/internal/report"
	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// State is the session loop state
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Prompter collects a filter selection and the restart answer
type Prompter interface {
	GetFilters() (trip.Selection, error)
	AskRestart() (bool, error)
}

// Loader produces the filtered table for a selection
type Loader interface {
	Load(ctx context.Context, sel trip.Selection) (*trip.Table, error)
}

// Session runs prompt → load → report until the user stops
type Session struct {
	prompt    Prompter
	loader    Loader
	reporters []report.Reporter
	out       io.Writer
	logger    *slog.Logger
	state     State
}

// New creates a session writing reports to out. A nil logger discards log output.
func New(prompt Prompter, loader Loader, reporters []report.Reporter, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		prompt:    prompt,
		loader:    loader,
		reporters: reporters,
		out:       out,
		logger:    log,
		state:     Running,
	}
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Run loops until the user declines to restart or input ends.
// Any load or report error stops the loop and is returned.
func (s *Session) Run(ctx context.Context) error {
	for s.state == Running {
		if err := ctx.Err(); err != nil {
			s.state = Stopped
			return err
		}

		iterCtx := logger.WithSession(ctx, uuid.NewString())
		if err := s.iterate(iterCtx); err != nil {
			s.state = Stopped
			if errors.Is(err, io.EOF) {
				s.logger.InfoContext(iterCtx, "input closed, stopping")
				return nil
			}
			return err
		}
	}
	return nil
}

// iterate runs one RUNNING step and moves to Stopped unless the user says yes
func (s *Session) iterate(ctx context.Context) error {
	sel, err := s.prompt.GetFilters()
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "selection made",
		slog.String("city", string(sel.City)),
		slog.String("month", string(sel.Month)),
		slog.String("day", string(sel.Day)),
	)

	table, err := s.loader.Load(ctx, sel)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", sel, err)
	}

	for _, r := range s.reporters {
		if err := r.Report(s.out, table); err != nil {
			return err
		}
	}

	again, err := s.prompt.AskRestart()
	if err != nil {
		return err
	}
	if !again {
		s.state = Stopped
	}
	return nil
}
