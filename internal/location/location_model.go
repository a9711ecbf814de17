package location

import "gorm.io/gorm"

// Location is a named physical venue referenced by games and availabilities.
type Location struct {
	gorm.Model
	Name      string  `json:"name" gorm:"uniqueIndex;not null"`
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Active    bool    `json:"active" gorm:"default:true"`
}

// Catalog is an id-indexed view of the location table, the lookup shape the
// matching and board engines consume.
type Catalog map[uint]Location

// NewCatalog builds a Catalog from a list of locations.
func NewCatalog(locations []Location) Catalog {
	catalog := make(Catalog, len(locations))
	for _, loc := range locations {
		catalog[loc.ID] = loc
	}
	return catalog
}

// NameOf returns the location's name, or an empty string for unknown ids.
// A dangling reference is treated as unknown, never as an error.
func (c Catalog) NameOf(id uint) string {
	if loc, ok := c[id]; ok {
		return loc.Name
	}
	return ""
}
