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

type ProjectController struct {
	DB     *gorm.DB
	Events realtime.Broadcaster
}

func (pc *ProjectController) GetProjects(c *gin.Context) {
	projects, err := store.ListProjects(pc.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := store.CreateProject(pc.DB, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	pc.Events.Broadcast(constants.EventProjectCreated, project)
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := store.UpdateProject(pc.DB, c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	pc.Events.Broadcast(constants.EventProjectUpdated, project)
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteProject(pc.DB, id); err != nil {
		respondStoreError(c, err)
		return
	}

	pc.Events.Broadcast(constants.EventProjectDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
