package game

import (
	"errors"

	"gorm.io/gorm"
)

// GameRepository defines database operations for game proposals and rosters.
type GameRepository interface {
	Create(g *Game) error
	GetByID(id uint) (*Game, error)
	GetOpen() ([]Game, error)
	GetByCreator(playerID uint) ([]Game, error)
	Update(g *Game) error
	UpdateStatus(id uint, status Status) error

	AddPlayer(gp *GamePlayer) error
	RemovePlayer(gameID, playerID uint) error
	GetRosterEntry(gameID, playerID uint) (*GamePlayer, error)
	CountPlayers(gameID uint) (int64, error)
}

type gormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a GORM-backed game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gormGameRepository{db: db}
}

func (r *gormGameRepository) Create(g *Game) error {
	return r.db.Create(g).Error
}

func (r *gormGameRepository) GetByID(id uint) (*Game, error) {
	var g Game
	if err := r.db.Preload("CreatedBy").Preload("Players").Preload("Players.Player").
		First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// GetOpen returns everything the community board might show. Date and
// status filtering is the board engine's job, but deleted games never
// leave the database layer.
func (r *gormGameRepository) GetOpen() ([]Game, error) {
	var games []Game
	if err := r.db.Preload("CreatedBy").Preload("Players").
		Where("status <> ?", StatusDeleted).
		Order("date asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) GetByCreator(playerID uint) ([]Game, error) {
	var games []Game
	if err := r.db.Preload("Players").
		Where("created_by_id = ? AND status <> ?", playerID, StatusDeleted).
		Order("date asc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) Update(g *Game) error {
	return r.db.Save(g).Error
}

func (r *gormGameRepository) UpdateStatus(id uint, status Status) error {
	return r.db.Model(&Game{}).Where("id = ?", id).Update("status", status).Error
}

func (r *gormGameRepository) AddPlayer(gp *GamePlayer) error {
	return r.db.Create(gp).Error
}

func (r *gormGameRepository) RemovePlayer(gameID, playerID uint) error {
	return r.db.Where("game_id = ? AND player_id = ?", gameID, playerID).
		Delete(&GamePlayer{}).Error
}

func (r *gormGameRepository) GetRosterEntry(gameID, playerID uint) (*GamePlayer, error) {
	var gp GamePlayer
	if err := r.db.Where("game_id = ? AND player_id = ?", gameID, playerID).
		First(&gp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gp, nil
}

func (r *gormGameRepository) CountPlayers(gameID uint) (int64, error) {
	var count int64
	err := r.db.Model(&GamePlayer{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}
