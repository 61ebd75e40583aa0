package store

import (
	"teamboard/models"

	"gorm.io/gorm"
)

func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// UpdateUser applies the already-validated field updates. The password, if
// present, must arrive hashed.
func UpdateUser(db *gorm.DB, id string, updates map[string]any) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// DeleteUser removes the user and every join row pointing at them:
// project memberships, task assignments, demand assignments and their
// notifications.
func DeleteUser(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.DemandAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
