package notification

import (
	"errors"

	"gorm.io/gorm"
)

// NotificationRepository defines database operations for notifications.
type NotificationRepository interface {
	Create(n *Notification) error
	GetByPlayer(playerID uint, page, pageSize int) ([]Notification, int64, error)
	GetByID(id uint) (*Notification, error)
	// Exists is the best-effort de-duplication check: it reports whether an
	// identical alert was already composed for this recipient. Not atomic;
	// concurrent passes can still race in a duplicate.
	Exists(playerID uint, t Type, message string) (bool, error)
	MarkRead(id uint) error
	ClearForPlayer(playerID uint) error
}

type gormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a GORM-backed notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *gormNotificationRepository) GetByPlayer(playerID uint, page, pageSize int) ([]Notification, int64, error) {
	var list []Notification
	var total int64

	query := r.db.Model(&Notification{}).Where("player_id = ?", playerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Offset(offset).Limit(pageSize).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *gormNotificationRepository) GetByID(id uint) (*Notification, error) {
	var n Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *gormNotificationRepository) Exists(playerID uint, t Type, message string) (bool, error) {
	var count int64
	err := r.db.Model(&Notification{}).
		Where("player_id = ? AND type = ? AND message = ?", playerID, t, message).
		Count(&count).Error
	return count > 0, err
}

func (r *gormNotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&Notification{}).Where("id = ?", id).Update("read", true).Error
}

func (r *gormNotificationRepository) ClearForPlayer(playerID uint) error {
	return r.db.Where("player_id = ?", playerID).Delete(&Notification{}).Error
}
