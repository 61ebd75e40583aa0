package controllers

import (
	"log"
	"net/http"

	"teamboard/constants"
	"teamboard/dto"
	"teamboard/models"
	"teamboard/realtime"
	"teamboard/storage"
	"teamboard/store"
	"teamboard/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssetController struct {
	DB      *gorm.DB
	Events  realtime.Broadcaster
	Storage storage.Storage
}

func (ac *AssetController) GetAssets(c *gin.Context) {
	assets, err := store.ListAssets(ac.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// UploadAsset pushes the file to the storage backend first and records the
// metadata row only on success, so a storage failure never leaves a row
// pointing at a file that does not exist.
func (ac *AssetController) UploadAsset(c *gin.Context) {
	var req dto.UploadAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ac.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	data, err := storage.DecodeBase64(req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content must be valid base64"})
		return
	}

	url, path, err := ac.Storage.Upload(c.Request.Context(), req.FileName, req.Content, "assets")
	if err != nil {
		respondStoreError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	asset := models.Asset{
		Name:        req.FileName,
		URL:         url,
		StoragePath: path,
		Type:        storage.ClassifyFile(req.FileName),
		MimeType:    http.DetectContentType(data),
		Size:        int64(len(data)),
		ProjectID:   utils.NormalizeRef("project", req.ProjectID),
		UploadedBy:  userID.(string),
		Tags:        req.Tags,
	}
	if err := store.CreateAsset(ac.DB, &asset); err != nil {
		respondStoreError(c, err)
		return
	}

	ac.Events.Broadcast(constants.EventAssetUploaded, asset)
	c.JSON(http.StatusOK, asset)
}

func (ac *AssetController) DeleteAsset(c *gin.Context) {
	id := c.Param("id")
	asset, err := store.DeleteAsset(ac.DB, id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if ac.Storage != nil && asset.StoragePath != "" {
		if err := ac.Storage.Delete(c.Request.Context(), asset.StoragePath); err != nil {
			log.Printf("asset %s: storage delete failed: %v", id, err)
		}
	}

	ac.Events.Broadcast(constants.EventAssetDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
