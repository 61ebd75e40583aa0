package controllers

import (
	"net/http"

	"teamboard/constants"
	"teamboard/dto"
	"teamboard/models"
	"teamboard/realtime"
	"teamboard/store"
	"teamboard/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB     *gorm.DB
	Events realtime.Broadcaster
}

// GetNotifications lists the caller's own notifications, newest first.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, _ := c.Get("user_id")
	notifications, err := store.ListNotifications(nc.DB, userID.(string))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := utils.NormalizeRef("user", req.UserID)
	if target == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid id"})
		return
	}

	n := models.Notification{
		UserID:   *target,
		Title:    req.Title,
		Message:  req.Message,
		Category: req.Category,
	}
	if err := store.CreateNotification(nc.DB, &n); err != nil {
		respondStoreError(c, err)
		return
	}

	nc.Events.Broadcast(constants.EventNotificationCreated, n)
	c.JSON(http.StatusOK, n)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID, _ := c.Get("user_id")
	n, err := store.MarkNotificationRead(nc.DB, c.Param("id"), userID.(string))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, _ := c.Get("user_id")
	updated, err := store.MarkAllNotificationsRead(nc.DB, userID.(string))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
