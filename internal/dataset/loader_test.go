package dataset

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mini-rodalies-3d/bikeshare/internal/catalog"
	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

func testLoader() *Loader {
	return NewLoader(catalog.New("testdata", nil), nil)
}

func TestLoadAllAllReturnsFullTable(t *testing.T) {
	ctx := context.Background()
	for _, city := range trip.AllCities() {
		full, err := ReadFile(ctx, filepath.Join("testdata", catalog.DefaultFiles[city]), city)
		require.NoError(t, err)

		got, err := testLoader().Load(ctx, trip.Selection{City: city, Month: trip.MonthAll, Day: trip.DayAll})
		require.NoError(t, err)
		assert.Equal(t, full.Len(), got.Len(), "city %s", city)
	}
}

func TestLoadChicagoJune(t *testing.T) {
	got, err := testLoader().Load(context.Background(), trip.Selection{
		City: trip.Chicago, Month: "june", Day: trip.DayAll,
	})
	require.NoError(t, err)
	require.Equal(t, 5, got.Len())
	for _, r := range got.Records {
		assert.Equal(t, 6, r.Month)
		assert.Equal(t, 2017, r.StartTime.Year())
	}
}

func TestLoadByDay(t *testing.T) {
	for _, day := range []trip.Day{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		got, err := testLoader().Load(context.Background(), trip.Selection{
			City: trip.Chicago, Month: trip.MonthAll, Day: day,
		})
		require.NoError(t, err)
		for _, r := range got.Records {
			assert.Equal(t, day.Title(), r.Weekday.String())
		}
	}
}

func TestLoadEachCallIsIndependent(t *testing.T) {
	l := testLoader()
	ctx := context.Background()

	monday, err := l.Load(ctx, trip.Selection{City: trip.Chicago, Month: trip.MonthAll, Day: "monday"})
	require.NoError(t, err)
	all, err := l.Load(ctx, trip.Selection{City: trip.Chicago, Month: trip.MonthAll, Day: trip.DayAll})
	require.NoError(t, err)

	assert.Equal(t, 5, monday.Len())
	assert.Equal(t, 9, all.Len())
}

func TestLoadNoMatchingTrips(t *testing.T) {
	got, err := testLoader().Load(context.Background(), trip.Selection{
		City: trip.Washington, Month: "february", Day: trip.DayAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.False(t, got.HasGender)
}

func TestLoadUnknownCity(t *testing.T) {
	_, err := testLoader().Load(context.Background(), trip.Selection{City: "boston", Month: trip.MonthAll, Day: trip.DayAll})
	require.ErrorIs(t, err, catalog.ErrUnknownCity)
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader(catalog.New(t.TempDir(), nil), nil)
	_, err := l.Load(context.Background(), trip.Selection{City: trip.Chicago, Month: trip.MonthAll, Day: trip.DayAll})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	_, err := ReadFile(context.Background(), "trips.parquet", trip.Chicago)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFromSQLiteOverride(t *testing.T) {
	fromCSV, err := ReadCSVFile(filepath.Join("testdata", "chicago.csv"), trip.Chicago)
	require.NoError(t, err)

	dir := t.TempDir()
	writeSQLiteFixture(t, filepath.Join(dir, "chicago.sqlite"), fromCSV)

	l := NewLoader(catalog.New(dir, map[trip.City]string{trip.Chicago: "chicago.sqlite"}), nil)
	got, err := l.Load(context.Background(), trip.Selection{City: trip.Chicago, Month: "june", Day: "monday"})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
}

func TestLoadLogsDisplayCityName(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewLoader(catalog.New("testdata", nil), log)

	_, err := l.Load(context.Background(), trip.Selection{City: trip.NewYorkCity, Month: trip.MonthAll, Day: trip.DayAll})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `msg="dataset loaded"`)
	assert.Contains(t, buf.String(), `city="New York City"`)
	assert.Contains(t, buf.String(), "rows=4")
}
