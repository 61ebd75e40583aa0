package controllers

import (
	"fmt"
	"log"
	"net/http"

	"teamboard/constants"
	"teamboard/dto"
	"teamboard/models"
	"teamboard/realtime"
	"teamboard/storage"
	"teamboard/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskController struct {
	DB      *gorm.DB
	Events  realtime.Broadcaster
	Storage storage.Storage
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	tasks, err := store.ListTasks(tc.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	task, err := store.GetTask(tc.DB, c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := store.CreateTask(tc.DB, req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	tc.notifyAssignees(task)
	tc.Events.Broadcast(constants.EventTaskCreated, task)
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := store.UpdateTask(tc.DB, c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	tc.Events.Broadcast(constants.EventTaskUpdated, task)
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteTask(tc.DB, id); err != nil {
		respondStoreError(c, err)
		return
	}

	tc.Events.Broadcast(constants.EventTaskDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// AddAttachment uploads the file through the storage collaborator and
// records the attachment on the task. A missing storage backend degrades
// to 503 without writing anything.
func (tc *TaskController) AddAttachment(c *gin.Context) {
	taskID := c.Param("id")

	var req dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := store.GetTask(tc.DB, taskID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if tc.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	url, path, err := tc.Storage.Upload(c.Request.Context(), req.FileName, req.Content, "attachments")
	if err != nil {
		respondStoreError(c, err)
		return
	}

	fileType := req.Type
	if fileType == "" {
		fileType = storage.ClassifyFile(req.FileName)
	}

	attachment := models.Attachment{
		TaskID:      &task.ID,
		Name:        req.FileName,
		URL:         url,
		StoragePath: path,
		Type:        fileType,
	}
	if err := tc.DB.Create(&attachment).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	tc.Events.Broadcast(constants.EventTaskAttachmentAdded, attachment)
	c.JSON(http.StatusOK, attachment)
}

func (tc *TaskController) DeleteAttachment(c *gin.Context) {
	taskID := c.Param("id")
	attID := c.Param("attID")

	var attachment models.Attachment
	if err := tc.DB.First(&attachment, "id = ? AND task_id = ?", attID, taskID).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	if err := tc.DB.Delete(&attachment).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	if tc.Storage != nil && attachment.StoragePath != "" {
		if err := tc.Storage.Delete(c.Request.Context(), attachment.StoragePath); err != nil {
			// The row is gone; an orphaned file is preferable to a
			// resurrected attachment.
			log.Printf("attachment %s: storage delete failed: %v", attID, err)
		}
	}

	tc.Events.Broadcast(constants.EventTaskAttachmentDeleted, gin.H{"id": attID, "task_id": taskID})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// notifyAssignees records an unread notification for each assignee of a
// freshly created task. Failures are logged and swallowed: the task write
// already committed.
func (tc *TaskController) notifyAssignees(task *models.Task) {
	for _, uid := range task.AssigneeIDs {
		n := models.Notification{
			UserID:   uid,
			Title:    "New task assigned",
			Message:  fmt.Sprintf("You were assigned to %q", task.Title),
			Category: "task",
		}
		if err := store.CreateNotification(tc.DB, &n); err != nil {
			log.Printf("task %s: notify assignee %s failed: %v", task.ID, uid, err)
			continue
		}
		tc.Events.Broadcast(constants.EventNotificationCreated, n)
	}
}
