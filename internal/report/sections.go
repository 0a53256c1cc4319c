package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mini-rodalies-3d/bikeshare/internal/stats"
	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

func timeStats(w io.Writer, table *trip.Table) error {
	month, err := stats.Mode(column(table, func(r *trip.Record) int { return r.Month }))
	if err != nil {
		return err
	}
	day, err := stats.Mode(column(table, func(r *trip.Record) string { return r.Weekday.String() }))
	if err != nil {
		return err
	}
	hour, err := stats.Mode(column(table, func(r *trip.Record) int { return r.Hour }))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "The most popular month: %s\n", trip.MonthName(month))
	fmt.Fprintf(w, "The most popular day: %s\n", day)
	fmt.Fprintf(w, "The most popular hour: %d\n", hour)
	return nil
}

type stationPair struct {
	start, end string
}

func (a stationPair) less(b stationPair) bool {
	if a.start != b.start {
		return a.start < b.start
	}
	return a.end < b.end
}

// stationStats ignores blank station cells; a pair counts only when both ends are named
func stationStats(w io.Writer, table *trip.Table) error {
	var starts, ends []string
	var pairs []stationPair
	for _, r := range table.Records {
		start, end := strings.TrimSpace(r.StartStation), strings.TrimSpace(r.EndStation)
		if start != "" {
			starts = append(starts, start)
		}
		if end != "" {
			ends = append(ends, end)
		}
		if start != "" && end != "" {
			pairs = append(pairs, stationPair{start: start, end: end})
		}
	}

	start, err := stats.Mode(starts)
	if err != nil {
		return err
	}
	end, err := stats.Mode(ends)
	if err != nil {
		return err
	}
	pair, err := stats.ModeFunc(pairs, stationPair.less)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "The most commonly used start station: %s\n", start)
	fmt.Fprintf(w, "The most commonly used end station: %s\n", end)
	fmt.Fprintf(w, "The most frequent combination of start station and end station trip: %s and %s\n", pair.start, pair.end)
	return nil
}

func durationStats(w io.Writer, table *trip.Table) error {
	summary, err := stats.Summarize(column(table, func(r *trip.Record) float64 { return r.Duration }))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "The total travel time: %s\n", formatTravelTime(summary.Sum))
	fmt.Fprintf(w, "The mean travel time: %s\n", formatTravelTime(summary.Mean))
	return nil
}

func userStats(w io.Writer, table *trip.Table) error {
	fmt.Fprintln(w, "What is the breakdown of users?")
	writeCounts(w, stats.ValueCounts(column(table, func(r *trip.Record) string { return r.UserType })))

	if !table.HasGender {
		fmt.Fprintln(w, "Gender data isn't available")
	} else {
		var genders []string
		for _, r := range table.Records {
			if r.Gender != nil {
				genders = append(genders, *r.Gender)
			}
		}
		fmt.Fprintln(w, "What is the breakdown of gender?")
		if len(genders) == 0 {
			fmt.Fprintln(w, "No gender recorded for these trips")
		}
		writeCounts(w, stats.ValueCounts(genders))
	}

	if !table.HasBirthYear {
		fmt.Fprintln(w, "Birth year data isn't available")
		return nil
	}

	var years []int
	for _, r := range table.Records {
		if r.BirthYear != nil {
			years = append(years, *r.BirthYear)
		}
	}
	if len(years) == 0 {
		fmt.Fprintln(w, "No birth year recorded for these trips")
		return nil
	}

	earliest, err := stats.Min(years)
	if err != nil {
		return err
	}
	recent, err := stats.Max(years)
	if err != nil {
		return err
	}
	common, err := stats.Mode(years)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "The earliest year of birth: %d\n", earliest)
	fmt.Fprintf(w, "The most recent year of birth: %d\n", recent)
	fmt.Fprintf(w, "The most common year of birth: %d\n", common)
	return nil
}

func writeCounts(w io.Writer, counts []stats.Count[string]) {
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %s\n", c.Value, humanize.Comma(int64(c.Count)))
	}
}

// formatSeconds keeps two decimals while the value is exact in a float64;
// FormatFloat goes through int64, so larger values print as whole seconds.
func formatSeconds(s float64) string {
	if math.Abs(s) >= 1<<53 {
		return humanize.Commaf(math.Round(s))
	}
	return humanize.FormatFloat("#,###.##", s)
}

// formatTravelTime renders seconds with a readable breakdown, e.g. "9,480.00 seconds (2h38m0s)".
// The breakdown is left out when the value does not fit in whole int64 seconds.
func formatTravelTime(seconds float64) string {
	text := formatSeconds(seconds) + " seconds"
	if human, ok := humanSeconds(seconds); ok {
		text += " (" + human + ")"
	}
	return text
}

// humanSeconds prints rounded seconds in time.Duration's style without its ~292 year range limit
func humanSeconds(seconds float64) (string, bool) {
	total := math.Round(seconds)
	if math.IsNaN(total) || total < 0 || total >= math.MaxInt64 {
		return "", false
	}

	s := int64(total)
	h, m := s/3600, s/60%60
	s %= 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm%ds", h, m, s), true
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, s), true
	default:
		return fmt.Sprintf("%ds", s), true
	}
}
