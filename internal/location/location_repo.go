package location

import (
	"errors"

	"gorm.io/gorm"
)

// LocationRepository defines database operations for the venue catalog.
type LocationRepository interface {
	Create(loc *Location) error
	GetByID(id uint) (*Location, error)
	GetAll() ([]Location, error)
	GetActive() ([]Location, error)
	Update(loc *Location) error
	Delete(id uint) error
}

type gormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a GORM-backed location repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &gormLocationRepository{db: db}
}

func (r *gormLocationRepository) Create(loc *Location) error {
	return r.db.Create(loc).Error
}

func (r *gormLocationRepository) GetByID(id uint) (*Location, error) {
	var loc Location
	if err := r.db.First(&loc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *gormLocationRepository) GetAll() ([]Location, error) {
	var locations []Location
	if err := r.db.Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *gormLocationRepository) GetActive() ([]Location, error) {
	var locations []Location
	if err := r.db.Where("active = true").Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *gormLocationRepository) Update(loc *Location) error {
	return r.db.Save(loc).Error
}

func (r *gormLocationRepository) Delete(id uint) error {
	return r.db.Delete(&Location{}, id).Error
}
