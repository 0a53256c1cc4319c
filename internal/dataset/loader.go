package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// ErrUnsupportedFormat is returned for dataset files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// PathResolver maps a city to its dataset file
type PathResolver interface {
	Path(city trip.City) (string, error)
}

// Loader reads a city's dataset and narrows it to a selection
type Loader struct {
	paths  PathResolver
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(paths PathResolver, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{paths: paths, logger: logger}
}

// Load reads the dataset for sel.City and keeps the trips matching sel.Month and sel.Day.
// Every call reads the file again; tables are never shared between calls.
func (l *Loader) Load(ctx context.Context, sel trip.Selection) (*trip.Table, error) {
	path, err := l.paths.Path(sel.City)
	if err != nil {
		return nil, err
	}

	table, err := ReadFile(ctx, path, sel.City)
	if err != nil {
		return nil, err
	}

	filtered := table.Narrow(sel.Month, sel.Day)

	l.logger.DebugContext(ctx, "dataset loaded",
		slog.String("path", path),
		slog.String("city", sel.City.Title()),
		slog.String("month", string(sel.Month)),
		slog.String("day", string(sel.Day)),
		slog.Int("rows", table.Len()),
		slog.Int("matched", filtered.Len()),
	)

	return filtered, nil
}

// ReadFile reads an unfiltered dataset, choosing the reader by file extension
func ReadFile(ctx context.Context, path string, city trip.City) (*trip.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path, city)
	case ".db", ".sqlite", ".sqlite3":
		return ReadSQLiteFile(ctx, path, city)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
