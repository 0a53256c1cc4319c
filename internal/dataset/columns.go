package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// Column names as they appear in the dataset header
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime, ColEndTime, ColTripDuration,
	ColStartStation, ColEndStation, ColUserType,
}

// ErrMissingColumn is returned when a dataset header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// timeLayouts are tried in order when parsing timestamps.
// The published CSVs use the first; SQLite drivers may hand back RFC3339.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// rowDecoder turns header-indexed string rows into trip records
type rowDecoder struct {
	idx          map[string]int
	hasGender    bool
	hasBirthYear bool
}

func newRowDecoder(header []string) (*rowDecoder, error) {
	idx := makeIndex(header)
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	_, hasGender := idx[ColGender]
	_, hasBirthYear := idx[ColBirthYear]
	return &rowDecoder{idx: idx, hasGender: hasGender, hasBirthYear: hasBirthYear}, nil
}

// decode parses one row. line is used only for error messages.
func (d *rowDecoder) decode(record []string, line int) (trip.Record, error) {
	var r trip.Record

	start, err := parseTime(getField(record, d.idx, ColStartTime))
	if err != nil {
		return r, fmt.Errorf("row %d: %s: %w", line, ColStartTime, err)
	}
	r.StartTime = start

	// End Time feeds no statistic; an unreadable value is left zero
	if end, err := parseTime(getField(record, d.idx, ColEndTime)); err == nil {
		r.EndTime = end
	}

	dur, err := strconv.ParseFloat(getField(record, d.idx, ColTripDuration), 64)
	if err != nil {
		return r, fmt.Errorf("row %d: %s: %w", line, ColTripDuration, err)
	}
	r.Duration = dur

	r.StartStation = getField(record, d.idx, ColStartStation)
	r.EndStation = getField(record, d.idx, ColEndStation)
	r.UserType = getField(record, d.idx, ColUserType)

	if d.hasGender {
		if g := getField(record, d.idx, ColGender); g != "" {
			r.Gender = &g
		}
	}

	if d.hasBirthYear {
		if s := getField(record, d.idx, ColBirthYear); s != "" {
			// Exported with a trailing ".0" because the column has gaps
			y, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return r, fmt.Errorf("row %d: %s: %w", line, ColBirthYear, err)
			}
			year := int(y)
			r.BirthYear = &year
		}
	}

	r.Derive()
	return r, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			continue // unnamed index column
		}
		idx[h] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
