package catalog

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// ErrUnknownCity is returned when a city has no dataset entry
var ErrUnknownCity = errors.New("unknown city")

// DefaultFiles maps each city to its dataset file name
var DefaultFiles = map[trip.City]string{
	trip.Chicago:     "chicago.csv",
	trip.NewYorkCity: "new_york_city.csv",
	trip.Washington:  "washington.csv",
}

// Catalog resolves cities to dataset paths
type Catalog struct {
	dataDir string
	files   map[trip.City]string
}

// New creates a catalog rooted at dataDir. Entries in overrides replace the
// default file for that city; relative paths are joined to dataDir.
func New(dataDir string, overrides map[trip.City]string) *Catalog {
	files := make(map[trip.City]string, len(DefaultFiles))
	for city, name := range DefaultFiles {
		files[city] = name
	}
	for city, name := range overrides {
		if name != "" {
			files[city] = name
		}
	}
	return &Catalog{dataDir: dataDir, files: files}
}

// Path returns the dataset path for city
func (c *Catalog) Path(city trip.City) (string, error) {
	name, ok := c.files[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(c.dataDir, name), nil
}
