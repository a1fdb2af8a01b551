package grib

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GridType identifies the horizontal grid layout of a message.
type GridType string

const (
	// GridTypeRegularLL is a regular latitude/longitude grid.
	GridTypeRegularLL GridType = "regular_ll"
	// GridTypeRegularGG is a regular Gaussian grid.
	GridTypeRegularGG GridType = "regular_gg"
	// GridTypeUnknown stands for any grid type absent from the catalog.
	GridTypeUnknown GridType = ""
)

// Catalog maps a grid type to the ordered metadata keys specific to it.
// Catalogs are immutable once built; DefaultCatalog is process-wide
// configuration and must not be mutated.
type Catalog map[GridType][]string

// Keys returns the key list for gt. The second return is false when gt is
// not cataloged, which callers treat as the explicit unknown-grid-type path.
func (c Catalog) Keys(gt GridType) ([]string, bool) {
	keys, ok := c[gt]
	return keys, ok
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for gt, keys := range c {
		out[gt] = append([]string(nil), keys...)
	}
	return out
}

// DefaultCatalog holds the supported grid types and their keys.
var DefaultCatalog = Catalog{
	GridTypeRegularLL: {
		"Ni", "Nj", "iDirectionIncrementInDegrees", "iScansNegatively",
		"jDirectionIncrementInDegrees", "jPointsAreConsecutive", "jScansPositively",
		"latitudeOfFirstGridPointInDegrees", "latitudeOfLastGridPointInDegrees",
		"longitudeOfFirstGridPointInDegrees", "longitudeOfLastGridPointInDegrees",
	},
	GridTypeRegularGG: {
		"Ni", "Nj", "iDirectionIncrementInDegrees", "iScansNegatively",
		"N", "jPointsAreConsecutive", "jScansPositively",
		"latitudeOfFirstGridPointInDegrees", "latitudeOfLastGridPointInDegrees",
		"longitudeOfFirstGridPointInDegrees", "longitudeOfLastGridPointInDegrees",
	},
}

type catalogFile struct {
	GridTypes map[string][]string `toml:"grid_types"`
}

// LoadCatalog reads additional grid-type key lists from a TOML file and
// merges them over DefaultCatalog. A grid type present in both replaces the
// default key list. The file format is:
//
//	[grid_types]
//	lambert = ["Nx", "Ny", "LoVInDegrees"]
func LoadCatalog(path string) (Catalog, error) {
	var cf catalogFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	out := DefaultCatalog.Clone()
	for gt, keys := range cf.GridTypes {
		if gt == "" {
			return nil, fmt.Errorf("load catalog %s: empty grid type name", path)
		}
		out[GridType(gt)] = append([]string(nil), keys...)
	}
	return out, nil
}
