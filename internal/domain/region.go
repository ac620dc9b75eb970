package domain

import (
	"time"

	"github.com/google/uuid"
)

// Country is the root of a region hierarchy.
type Country struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

// Region is a node of the country hierarchy: broad regions have no parent,
// subregions hang under a broad region and provinces under a subregion.
type Region struct {
	ID             uuid.UUID
	CountryID      uuid.UUID
	Name           string
	Code           string
	Level          RegionLevel
	ParentRegionID *uuid.UUID
	Description    *string
	SortOrder      int
	CreatedAt      time.Time
}

// IsProvince reports whether the region is a leaf of the hierarchy.
func (r *Region) IsProvince() bool {
	return r.Level == RegionLevelProvince
}

// MapEntry is one province value of a choropleth map. ID is the province code.
type MapEntry struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}
