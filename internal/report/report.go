package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mini-rodalies-3d/bikeshare/internal/stats"
	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// NoTrips replaces a section's statistics when the filtered table is empty
const NoTrips = "No trips match the selected filters."

var separator = strings.Repeat("-", 40)

// Reporter prints one group of statistics for a filtered table
type Reporter interface {
	Report(w io.Writer, table *trip.Table) error
}

// Section is a titled, self-timing Reporter
type Section struct {
	Title string
	body  func(w io.Writer, table *trip.Table) error
	now   func() time.Time
}

// Report writes the section heading, its statistics, how long they took and a separator.
// An empty table, or an aggregate with nothing to aggregate, prints NoTrips instead of failing.
func (s *Section) Report(w io.Writer, table *trip.Table) error {
	now := s.now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintf(w, "\n%s\n\n", s.Title)
	start := now()

	if table.Len() == 0 {
		fmt.Fprintln(w, NoTrips)
	} else if err := s.body(w, table); err != nil {
		if !errors.Is(err, stats.ErrNoData) {
			return fmt.Errorf("%s: %w", s.Title, err)
		}
		fmt.Fprintln(w, NoTrips)
	}

	fmt.Fprintf(w, "\nThis took %s.\n", now().Sub(start))
	fmt.Fprintln(w, separator)
	return nil
}

var (
	TimeStats = &Section{
		Title: "Calculating The Most Frequent Times of Travel...",
		body:  timeStats,
	}
	StationStats = &Section{
		Title: "Calculating The Most Popular Stations and Trip...",
		body:  stationStats,
	}
	DurationStats = &Section{
		Title: "Calculating Trip Duration...",
		body:  durationStats,
	}
	UserStats = &Section{
		Title: "Calculating User Stats...",
		body:  userStats,
	}
)

// All returns the reporters in the order a session runs them
func All() []Reporter {
	return []Reporter{TimeStats, StationStats, DurationStats, UserStats}
}

// column extracts one field from every record
func column[T any](table *trip.Table, get func(r *trip.Record) T) []T {
	out := make([]T, len(table.Records))
	for i := range table.Records {
		out[i] = get(&table.Records[i])
	}
	return out
}
