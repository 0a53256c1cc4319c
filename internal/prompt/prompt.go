package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

const (
	Greeting = "Hello! Let's explore some US bikeshare data!"
	TryAgain = "Try again"

	CityQuestion    = "Which city would you like to see data from? Chicago, New York, or Washington?"
	MonthQuestion   = "Which month would you like to see data from? January, February, March, April, May, June? Type 'all' for all months"
	DayQuestion     = "Which day of week would you like to see data from? Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday? Type 'all' for all days"
	RestartQuestion = "Would you like to restart? Enter yes or no."
)

// Separator is printed between sections of output
var Separator = strings.Repeat("-", 40)

// Prompter asks questions on a line-oriented console
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a prompter reading answers from in and writing questions to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// GetFilters asks for city, month and day, re-asking each until the answer is valid.
// Returns io.EOF if the input ends before all three are answered.
func (p *Prompter) GetFilters() (trip.Selection, error) {
	var sel trip.Selection

	fmt.Fprintln(p.out, Greeting)

	city, err := ask(p, CityQuestion, trip.ParseCity)
	if err != nil {
		return sel, err
	}
	month, err := ask(p, MonthQuestion, trip.ParseMonth)
	if err != nil {
		return sel, err
	}
	day, err := ask(p, DayQuestion, trip.ParseDay)
	if err != nil {
		return sel, err
	}

	fmt.Fprintln(p.out, Separator)

	sel = trip.Selection{City: city, Month: month, Day: day}
	return sel, nil
}

// AskRestart reports whether the user typed "yes" (any case).
// Any other answer, including end of input, means no.
func (p *Prompter) AskRestart() (bool, error) {
	fmt.Fprintf(p.out, "\n%s\n", RestartQuestion)

	answer, err := p.readLine()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

// ask prints question once and then reads answers until parse accepts one.
// There is no retry limit.
func ask[T any](p *Prompter, question string, parse func(string) (T, bool)) (T, error) {
	fmt.Fprintln(p.out, question)
	for {
		input, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(input); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, TryAgain)
	}
}

// readLine returns the next line without its terminator.
// A final line lacking a newline is returned before io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
