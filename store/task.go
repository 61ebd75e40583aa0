package store

import (
	"teamboard/dto"
	"teamboard/models"
	"teamboard/utils"

	"gorm.io/gorm"
)

func ListTasks(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	err := db.
		Preload("Subtasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Attachments").
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	if err := attachTaskRelations(db, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func GetTask(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	err := db.
		Preload("Subtasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Attachments").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	tasks := []models.Task{task}
	if err := attachTaskRelations(db, tasks); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

func CreateTask(db *gorm.DB, req dto.CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		ProjectID:   utils.NormalizeRef("project", req.ProjectID),
	}
	for i, s := range req.Subtasks {
		task.Subtasks = append(task.Subtasks, models.Subtask{
			Title:     s.Title,
			Completed: s.Completed,
			Position:  i,
		})
	}

	assignees := utils.FilterRefs("assignee", req.Assignees)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		for i, uid := range assignees {
			row := models.TaskAssignee{TaskID: task.ID, UserID: uid, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for i, tag := range req.Tags {
			row := models.TaskTag{TaskID: task.ID, Tag: tag, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetTask(db, task.ID)
}

func UpdateTask(db *gorm.DB, id string, req dto.UpdateTaskRequest) (*models.Task, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.Priority != nil {
			updates["priority"] = *req.Priority
		}
		if req.TrackedSeconds != nil {
			updates["tracked_seconds"] = *req.TrackedSeconds
		}
		if req.Tracking != nil {
			updates["tracking"] = *req.Tracking
		}
		if set, due, err := parseDate(req.DueDate); err != nil {
			return err
		} else if set {
			updates["due_date"] = due
		}
		if req.ProjectID != nil {
			updates["project_id"] = utils.NormalizeRef("project", *req.ProjectID)
		}
		if len(updates) > 0 {
			if err := tx.Model(&task).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Assignees != nil {
			if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignee{}).Error; err != nil {
				return err
			}
			for i, uid := range utils.FilterRefs("assignee", *req.Assignees) {
				row := models.TaskAssignee{TaskID: id, UserID: uid, Position: i}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.Tags != nil {
			if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
				return err
			}
			for i, tag := range *req.Tags {
				row := models.TaskTag{TaskID: id, Tag: tag, Position: i}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.Subtasks != nil {
			if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
				return err
			}
			for i, s := range *req.Subtasks {
				row := models.Subtask{TaskID: id, Title: s.Title, Completed: s.Completed, Position: i}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetTask(db, id)
}

func DeleteTask(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
}

// attachTaskRelations assembles assignee ids and tags for a batch of tasks
// with one query per child table instead of one per task.
func attachTaskRelations(db *gorm.DB, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}

	var assignees []models.TaskAssignee
	if err := db.Where("task_id IN ?", ids).Order("position ASC").Find(&assignees).Error; err != nil {
		return err
	}
	assigneesByTask := make(map[string][]string)
	for _, a := range assignees {
		assigneesByTask[a.TaskID] = append(assigneesByTask[a.TaskID], a.UserID)
	}

	var tags []models.TaskTag
	if err := db.Where("task_id IN ?", ids).Order("position ASC").Find(&tags).Error; err != nil {
		return err
	}
	tagsByTask := make(map[string][]string)
	for _, t := range tags {
		tagsByTask[t.TaskID] = append(tagsByTask[t.TaskID], t.Tag)
	}

	for i := range tasks {
		tasks[i].AssigneeIDs = assigneesByTask[tasks[i].ID]
		tasks[i].Tags = tagsByTask[tasks[i].ID]
		if tasks[i].AssigneeIDs == nil {
			tasks[i].AssigneeIDs = []string{}
		}
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
		if tasks[i].Subtasks == nil {
			tasks[i].Subtasks = []models.Subtask{}
		}
		if tasks[i].Attachments == nil {
			tasks[i].Attachments = []models.Attachment{}
		}
	}
	return nil
}
