package trip

import "time"

// Record is one bike-share trip.
// Gender and BirthYear are nil when the dataset has no such column
// or the cell is empty for this trip.
type Record struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       *string
	BirthYear    *int

	// Derived from StartTime once at load time
	Month   int
	Weekday time.Weekday
	Hour    int
}

// Derive fills Month, Weekday and Hour from StartTime
func (r *Record) Derive() {
	r.Month = int(r.StartTime.Month())
	r.Weekday = r.StartTime.Weekday()
	r.Hour = r.StartTime.Hour()
}

// Table is the in-memory trip collection for one city
type Table struct {
	City    City
	Records []Record

	// Column presence, taken from the dataset header
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips
func (t *Table) Len() int {
	return len(t.Records)
}

// Narrow returns a new table holding only the trips that match month and day.
// Rows keep their original order and are never modified.
func (t *Table) Narrow(month Month, day Day) *Table {
	out := &Table{
		City:         t.City,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}

	if month == MonthAll && day == DayAll {
		out.Records = t.Records
		return out
	}

	monthIdx := month.Index()
	dayName := day.Title()

	out.Records = make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if month != MonthAll && r.Month != monthIdx {
			continue
		}
		if day != DayAll && r.Weekday.String() != dayName {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}
