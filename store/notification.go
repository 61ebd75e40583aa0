package store

import (
	"teamboard/models"

	"gorm.io/gorm"
)

func ListNotifications(db *gorm.DB, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func CreateNotification(db *gorm.DB, n *models.Notification) error {
	return db.Create(n).Error
}

// MarkNotificationRead flips the read flag of one of the user's own
// notifications. Marking an already-read notification again is a no-op.
func MarkNotificationRead(db *gorm.DB, id, userID string) (*models.Notification, error) {
	var n models.Notification
	if err := db.First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	if !n.Read {
		if err := db.Model(&n).Update("is_read", true).Error; err != nil {
			return nil, err
		}
		n.Read = true
	}
	return &n, nil
}

// MarkAllNotificationsRead is idempotent: the second call in a row matches
// zero rows and changes nothing.
func MarkAllNotificationsRead(db *gorm.DB, userID string) (int64, error) {
	res := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
