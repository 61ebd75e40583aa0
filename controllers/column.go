package controllers

import (
	"net/http"

	"teamboard/constants"
	"teamboard/dto"
	"teamboard/realtime"
	"teamboard/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ColumnController struct {
	DB     *gorm.DB
	Events realtime.Broadcaster
}

func (cc *ColumnController) GetColumns(c *gin.Context) {
	columns, err := store.ListColumns(cc.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

func (cc *ColumnController) CreateColumn(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := store.CreateColumn(cc.DB, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	cc.Events.Broadcast(constants.EventColumnCreated, column)
	c.JSON(http.StatusOK, column)
}

func (cc *ColumnController) UpdateColumn(c *gin.Context) {
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := store.UpdateColumn(cc.DB, c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	cc.Events.Broadcast(constants.EventColumnUpdated, column)
	c.JSON(http.StatusOK, column)
}

func (cc *ColumnController) DeleteColumn(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteColumn(cc.DB, id); err != nil {
		respondStoreError(c, err)
		return
	}

	cc.Events.Broadcast(constants.EventColumnDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
