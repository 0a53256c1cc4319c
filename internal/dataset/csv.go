package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// ReadCSVFile reads a trip dataset from a CSV file
func ReadCSVFile(path string, city trip.City) (*trip.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	table, err := ReadCSV(f, city)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadCSV parses a trip dataset. The first row must be the header.
func ReadCSV(r io.Reader, city trip.City) (*trip.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	dec, err := newRowDecoder(header)
	if err != nil {
		return nil, err
	}

	table := &trip.Table{
		City:         city,
		HasGender:    dec.hasGender,
		HasBirthYear: dec.hasBirthYear,
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		rec, err := dec.decode(record, line)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}
