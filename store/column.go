package store

import (
	"fmt"

	"teamboard/dto"
	"teamboard/models"
	"teamboard/utils"

	"gorm.io/gorm"
)

func ListColumns(db *gorm.DB) ([]models.BoardColumn, error) {
	var columns []models.BoardColumn
	err := db.Order("position ASC").Find(&columns).Error
	return columns, err
}

func CreateColumn(db *gorm.DB, req dto.CreateColumnRequest) (*models.BoardColumn, error) {
	id := utils.Slugify(req.Title)
	if id == "" {
		return nil, fmt.Errorf("%w: title produces an empty column id", ErrInvalidInput)
	}

	var count int64
	if err := db.Model(&models.BoardColumn{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: column %q already exists", ErrInvalidInput, id)
	}

	column := models.BoardColumn{ID: id, Title: req.Title, Position: req.Position}
	if err := db.Create(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// UpdateColumn renames or repositions a lane. The id stays fixed so task
// status strings keep pointing at it.
func UpdateColumn(db *gorm.DB, id string, req dto.UpdateColumnRequest) (*models.BoardColumn, error) {
	var column models.BoardColumn
	if err := db.First(&column, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if len(updates) > 0 {
		if err := db.Model(&column).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &column, nil
}

// DeleteColumn removes the lane only. Tasks keep their status string; the
// board tolerates orphaned statuses.
func DeleteColumn(db *gorm.DB, id string) error {
	var column models.BoardColumn
	if err := db.First(&column, "id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&column).Error
}
