package player

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// PlayerRepository defines database operations for players and sessions.
type PlayerRepository interface {
	Create(p *Player) error
	GetByID(id uint) (*Player, error)
	GetByEmail(email string) (*Player, error)
	GetByPhone(phone string) (*Player, error)
	Update(p *Player) error
	List(page, pageSize int) ([]Player, int64, error)
	SetBlocked(id uint, blocked bool) error

	SaveRefreshToken(t *RefreshToken) error
	GetRefreshToken(token string) (*RefreshToken, error)
	RevokeRefreshToken(token string) error
}

type gormPlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a GORM-backed player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &gormPlayerRepository{db: db}
}

func (r *gormPlayerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

func (r *gormPlayerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormPlayerRepository) GetByEmail(email string) (*Player, error) {
	var p Player
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormPlayerRepository) GetByPhone(phone string) (*Player, error) {
	var p Player
	if err := r.db.Where("phone = ?", phone).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormPlayerRepository) Update(p *Player) error {
	return r.db.Save(p).Error
}

func (r *gormPlayerRepository) List(page, pageSize int) ([]Player, int64, error) {
	var players []Player
	var total int64

	if err := r.db.Model(&Player{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := r.db.Offset(offset).Limit(pageSize).Order("name asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *gormPlayerRepository) SetBlocked(id uint, blocked bool) error {
	updates := map[string]interface{}{"blocked": blocked}
	if blocked {
		updates["blocked_at"] = time.Now()
	} else {
		updates["blocked_at"] = nil
	}
	return r.db.Model(&Player{}).Where("id = ?", id).Updates(updates).Error
}

func (r *gormPlayerRepository) SaveRefreshToken(t *RefreshToken) error {
	return r.db.Create(t).Error
}

func (r *gormPlayerRepository) GetRefreshToken(token string) (*RefreshToken, error) {
	var t RefreshToken
	if err := r.db.Where("token = ? AND revoked = false AND expires_at > ?", token, time.Now()).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormPlayerRepository) RevokeRefreshToken(token string) error {
	return r.db.Model(&RefreshToken{}).Where("token = ?", token).Update("revoked", true).Error
}
