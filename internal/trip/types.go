package trip

import (
	"fmt"
	"strings"
	"time"
)

// City is a bike-share system with a published trip dataset
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// AllCities returns every city in prompt order
func AllCities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// cityAliases maps accepted prompt input to the catalog city.
// "new york city" itself is not accepted as input.
var cityAliases = map[string]City{
	"chicago":    Chicago,
	"new york":   NewYorkCity,
	"washington": Washington,
}

// ParseCity normalizes user input and resolves it to a City
func ParseCity(input string) (City, bool) {
	c, ok := cityAliases[strings.ToLower(strings.TrimSpace(input))]
	return c, ok
}

// Title returns the display name, e.g. "New York City"
func (c City) Title() string {
	return titleCase(string(c))
}

// Month is a month filter: one of the months covered by the datasets, or MonthAll
type Month string

// MonthAll disables month filtering
const MonthAll Month = "all"

// months is the single ordered list of filterable months.
// A month's index is its position in this list plus one.
var months = []Month{"january", "february", "march", "april", "may", "june"}

// ParseMonth normalizes user input and resolves it to a Month
func ParseMonth(input string) (Month, bool) {
	m := Month(strings.ToLower(strings.TrimSpace(input)))
	if m == MonthAll {
		return m, true
	}
	return m, m.Index() > 0
}

// Index returns the 1-based calendar month number, or 0 for MonthAll and unknown values
func (m Month) Index() int {
	for i, v := range months {
		if v == m {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the title-cased name for a calendar month number (1-12)
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return fmt.Sprintf("Month %d", n)
	}
	return time.Month(n).String()
}

// Day is a weekday filter: a weekday name, or DayAll
type Day string

// DayAll disables weekday filtering
const DayAll Day = "all"

// days is the single ordered list of weekday names, Monday first
var days = []Day{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ParseDay normalizes user input and resolves it to a Day
func ParseDay(input string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(input)))
	if d == DayAll {
		return d, true
	}
	for _, v := range days {
		if v == d {
			return d, true
		}
	}
	return d, false
}

// Title returns the weekday name in the form time.Weekday prints it, e.g. "Monday"
func (d Day) Title() string {
	return titleCase(string(d))
}

// Selection is the validated (city, month, day) triple returned by the prompt
type Selection struct {
	City  City
	Month Month
	Day   Day
}

func (s Selection) String() string {
	return fmt.Sprintf("%s/%s/%s", s.City, s.Month, s.Day)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
