package store

import (
	"teamboard/models"

	"gorm.io/gorm"
)

func ListAssets(db *gorm.DB) ([]models.Asset, error) {
	var assets []models.Asset
	if err := db.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	if err := attachAssetTags(db, assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func CreateAsset(db *gorm.DB, asset *models.Asset) error {
	tags := asset.Tags
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(asset).Error; err != nil {
			return err
		}
		for i, tag := range tags {
			row := models.AssetTag{AssetID: asset.ID, Tag: tag, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if asset.Tags == nil {
		asset.Tags = []string{}
	}
	return nil
}

// DeleteAsset removes the row and returns the deleted record so the caller
// can clean the file out of the storage backend.
func DeleteAsset(db *gorm.DB, id string) (*models.Asset, error) {
	var asset models.Asset
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asset, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&models.AssetTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func attachAssetTags(db *gorm.DB, assets []models.Asset) error {
	if len(assets) == 0 {
		return nil
	}
	ids := make([]string, len(assets))
	for i := range assets {
		ids[i] = assets[i].ID
	}

	var rows []models.AssetTag
	if err := db.Where("asset_id IN ?", ids).Order("position ASC").Find(&rows).Error; err != nil {
		return err
	}
	byAsset := make(map[string][]string)
	for _, r := range rows {
		byAsset[r.AssetID] = append(byAsset[r.AssetID], r.Tag)
	}
	for i := range assets {
		assets[i].Tags = byAsset[assets[i].ID]
		if assets[i].Tags == nil {
			assets[i].Tags = []string{}
		}
	}
	return nil
}
