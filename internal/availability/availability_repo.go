package availability

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AvailabilityRepository defines database operations for availabilities.
type AvailabilityRepository interface {
	Create(a *Availability) error
	GetByID(id uint) (*Availability, error)
	GetByPlayer(playerID uint) ([]Availability, error)
	GetActive() ([]Availability, error)
	Update(a *Availability) error
	MarkDeleted(id uint) error
	ExpireOverdue(now time.Time) (int64, error)
}

type gormAvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a GORM-backed availability repository.
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &gormAvailabilityRepository{db: db}
}

func (r *gormAvailabilityRepository) Create(a *Availability) error {
	return r.db.Create(a).Error
}

func (r *gormAvailabilityRepository) GetByID(id uint) (*Availability, error) {
	var a Availability
	if err := r.db.Preload("Player").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *gormAvailabilityRepository) GetByPlayer(playerID uint) ([]Availability, error) {
	var list []Availability
	if err := r.db.Where("player_id = ? AND status <> ?", playerID, StatusDeleted).
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormAvailabilityRepository) GetActive() ([]Availability, error) {
	var list []Availability
	if err := r.db.Preload("Player").
		Where("status = ?", StatusActive).
		Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormAvailabilityRepository) Update(a *Availability) error {
	return r.db.Save(a).Error
}

func (r *gormAvailabilityRepository) MarkDeleted(id uint) error {
	return r.db.Model(&Availability{}).Where("id = ?", id).Update("status", StatusDeleted).Error
}

// ExpireOverdue flips active rows whose window has passed. Expiry is
// otherwise lazy; this keeps listings cheap.
func (r *gormAvailabilityRepository) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&Availability{}).
		Where("status = ? AND expires_at < ?", StatusActive, now).
		Update("status", StatusExpired)
	return result.RowsAffected, result.Error
}
