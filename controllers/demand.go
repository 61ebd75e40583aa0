package controllers

import (
	"fmt"
	"log"
	"net/http"

	"teamboard/constants"
	"teamboard/dto"
	"teamboard/models"
	"teamboard/realtime"
	"teamboard/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DemandController struct {
	DB     *gorm.DB
	Events realtime.Broadcaster
}

func (dc *DemandController) GetDemands(c *gin.Context) {
	demands, err := store.ListDemands(dc.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, demands)
}

func (dc *DemandController) CreateDemand(c *gin.Context) {
	var req dto.CreateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	demand, err := store.CreateDemand(dc.DB, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	dc.notifyAssignees(demand)
	dc.Events.Broadcast(constants.EventDemandCreated, demand)
	c.JSON(http.StatusOK, demand)
}

// UpdateDemand applies a partial update. Changing the status lane is
// restricted to managers and admins; every other field is open to any
// authenticated user. Transitions are unconstrained: any lane can move to
// any other lane, in either direction.
func (dc *DemandController) UpdateDemand(c *gin.Context) {
	var req dto.UpdateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != nil {
		role, _ := c.Get("role")
		if role != constants.RoleAdmin && role != constants.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only managers can change demand status"})
			return
		}
	}

	demand, err := store.UpdateDemand(dc.DB, c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	dc.Events.Broadcast(constants.EventDemandUpdated, demand)
	c.JSON(http.StatusOK, demand)
}

func (dc *DemandController) DeleteDemand(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteDemand(dc.DB, id); err != nil {
		respondStoreError(c, err)
		return
	}

	dc.Events.Broadcast(constants.EventDemandDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (dc *DemandController) notifyAssignees(demand *models.Demand) {
	for _, uid := range demand.AssigneeIDs {
		n := models.Notification{
			UserID:   uid,
			Title:    "New IT demand assigned",
			Message:  fmt.Sprintf("You were assigned to %q", demand.Title),
			Category: "it-demand",
		}
		if err := store.CreateNotification(dc.DB, &n); err != nil {
			log.Printf("demand %s: notify assignee %s failed: %v", demand.ID, uid, err)
			continue
		}
		dc.Events.Broadcast(constants.EventNotificationCreated, n)
	}
}
