package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// TripsTable is the table a SQLite dataset keeps its trips in.
// Column names match the CSV header ("Start Time", "Trip Duration", ...).
const TripsTable = "trips"

// openReadOnly opens a SQLite dataset without ever writing to it
func openReadOnly(path string) (*sql.DB, error) {
	// sql.Open is lazy: check the file first so a typo does not surface
	// as an opaque "unable to open database file" on the first query
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	dsn, err := fileURI(path, "mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// fileURI builds a SQLite URI for path with the given raw query.
// The path is made absolute and percent-escaped so '?', '#' and '%' stay part of the file name.
func fileURI(path, query string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := url.URL{Scheme: "file", Path: abs, RawQuery: query}
	return u.String(), nil
}

// ReadSQLiteFile reads a trip dataset from the trips table of a SQLite file
func ReadSQLiteFile(ctx context.Context, path string, city trip.City) (*trip.Table, error) {
	conn, err := openReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT * FROM `+TripsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	dec, err := newRowDecoder(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	table := &trip.Table{
		City:         city,
		HasGender:    dec.hasGender,
		HasBirthYear: dec.hasBirthYear,
	}

	cells := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}
	record := make([]string, len(header))

	line := 1
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		// NULL reads as "" so it behaves like an empty CSV cell
		for i, c := range cells {
			record[i] = c.String
		}

		rec, err := dec.decode(record, line)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return table, nil
}
