package dataset

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

func TestReadCSVFileChicago(t *testing.T) {
	table, err := ReadCSVFile(filepath.Join("testdata", "chicago.csv"), trip.Chicago)
	require.NoError(t, err)

	assert.Equal(t, trip.Chicago, table.City)
	assert.Equal(t, 9, table.Len())
	assert.True(t, table.HasGender)
	assert.True(t, table.HasBirthYear)

	first := table.Records[0]
	assert.Equal(t, time.Date(2017, 1, 2, 8, 5, 10, 0, time.UTC), first.StartTime)
	assert.Equal(t, time.Date(2017, 1, 2, 8, 15, 10, 0, time.UTC), first.EndTime)
	assert.Equal(t, 600.0, first.Duration)
	assert.Equal(t, "Canal St & Adams St", first.StartStation)
	assert.Equal(t, "Clinton St & Madison St", first.EndStation)
	assert.Equal(t, "Subscriber", first.UserType)
	require.NotNil(t, first.Gender)
	assert.Equal(t, "Male", *first.Gender)
	require.NotNil(t, first.BirthYear)
	assert.Equal(t, 1985, *first.BirthYear)

	// Derived fields are populated at load time
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, time.Monday, first.Weekday)
	assert.Equal(t, 8, first.Hour)

	// Customers have no demographics in the export
	customer := table.Records[2]
	assert.Equal(t, "Customer", customer.UserType)
	assert.Nil(t, customer.Gender)
	assert.Nil(t, customer.BirthYear)
}

func TestReadCSVFileWashingtonHasNoDemographics(t *testing.T) {
	table, err := ReadCSVFile(filepath.Join("testdata", "washington.csv"), trip.Washington)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.False(t, table.HasGender)
	assert.False(t, table.HasBirthYear)
	assert.InDelta(t, 489.066, table.Records[0].Duration, 1e-9)
	for _, r := range table.Records {
		assert.Nil(t, r.Gender)
		assert.Nil(t, r.BirthYear)
	}
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "nope.csv"), trip.Chicago)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset")
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	in := "Start Time,End Time,Trip Duration,Start Station,User Type\n"
	_, err := ReadCSV(strings.NewReader(in), trip.Chicago)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), ColEndStation)
}

func TestReadCSVMalformedStartTime(t *testing.T) {
	in := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-01 10:00:00,2017-06-01 10:05:00,300,A,B,Subscriber\n" +
		"yesterday,2017-06-01 10:05:00,300,A,B,Subscriber\n"
	_, err := ReadCSV(strings.NewReader(in), trip.Washington)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), ColStartTime)
}

func TestReadCSVMalformedDuration(t *testing.T) {
	in := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-01 10:00:00,2017-06-01 10:05:00,five minutes,A,B,Subscriber\n"
	_, err := ReadCSV(strings.NewReader(in), trip.Washington)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColTripDuration)
}

func TestReadCSVAcceptsAlternateTimestampLayouts(t *testing.T) {
	in := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-01T10:00:00Z,,300,A,B,Subscriber\n" +
		"2017-06-01 10:00:00.250,,300,A,B,Subscriber\n" +
		"2017-06-01 10:00,,300,A,B,Subscriber\n"
	table, err := ReadCSV(strings.NewReader(in), trip.Washington)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	for _, r := range table.Records {
		assert.Equal(t, 10, r.Hour)
		assert.True(t, r.EndTime.IsZero())
	}
}

func TestReadCSVHeaderWithBOMAndSpaces(t *testing.T) {
	in := "\ufeffStart Time , End Time,Trip Duration,Start Station,End Station,User Type, Gender\n" +
		"2017-02-01 07:00:00,2017-02-01 07:10:00,600,A,B,Subscriber,\n"
	table, err := ReadCSV(strings.NewReader(in), trip.Chicago)
	require.NoError(t, err)
	assert.True(t, table.HasGender)
	assert.False(t, table.HasBirthYear)
	require.Equal(t, 1, table.Len())
	assert.Nil(t, table.Records[0].Gender)
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), trip.Chicago)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read header")
}
