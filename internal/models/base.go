// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Coordinates is a latitude/longitude pair stored as a JSONB column.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan unmarshals a JSONB column into the struct.
func (c *Coordinates) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Coordinates: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, c)
}

// StringSlice is a JSONB-backed list column (sports, categories, weekdays).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("StringSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Contains reports whether v is a member of the slice.
func (s StringSlice) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// UintSlice is a JSONB-backed list of record ids (location references).
type UintSlice []uint

func (s UintSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *UintSlice) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("UintSlice: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Contains reports whether id is a member of the slice.
func (s UintSlice) Contains(id uint) bool {
	for _, item := range s {
		if item == id {
			return true
		}
	}
	return false
}
