package store

import (
	"teamboard/constants"
	"teamboard/dto"
	"teamboard/models"
	"teamboard/utils"

	"gorm.io/gorm"
)

func ListDemands(db *gorm.DB) ([]models.Demand, error) {
	var demands []models.Demand
	if err := db.Order("created_at DESC").Find(&demands).Error; err != nil {
		return nil, err
	}
	if err := attachDemandAssignees(db, demands); err != nil {
		return nil, err
	}
	return demands, nil
}

func GetDemand(db *gorm.DB, id string) (*models.Demand, error) {
	var demand models.Demand
	if err := db.First(&demand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	demands := []models.Demand{demand}
	if err := attachDemandAssignees(db, demands); err != nil {
		return nil, err
	}
	return &demands[0], nil
}

// CreateDemand opens a ticket in the backlog lane. Priority defaults to
// Normal when the requester does not set one.
func CreateDemand(db *gorm.DB, req dto.CreateDemandRequest) (*models.Demand, error) {
	priority := req.Priority
	if priority == "" {
		priority = constants.DemandPriorityNormal
	}

	set, due, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	demand := models.Demand{
		Title:          req.Title,
		Description:    req.Description,
		RequesterID:    utils.NormalizeRef("requester", req.Requester.ID),
		RequesterName:  req.Requester.Name,
		RequesterEmail: req.Requester.Email,
		Urgency:        req.Urgency,
		Priority:       priority,
		Status:         constants.DemandStatusBacklog,
	}
	if set {
		demand.DueDate = due
	}

	assignees := utils.FilterRefs("assignee", req.Assignees)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demand).Error; err != nil {
			return err
		}
		return replaceDemandAssignees(tx, demand.ID, assignees)
	})
	if err != nil {
		return nil, err
	}

	return GetDemand(db, demand.ID)
}

// UpdateDemand applies a partial update. Status moves freely between lanes
// in either direction; the role gate on status changes lives in the
// handler.
func UpdateDemand(db *gorm.DB, id string, req dto.UpdateDemandRequest) (*models.Demand, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var demand models.Demand
		if err := tx.First(&demand, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Urgency != nil {
			updates["urgency"] = *req.Urgency
		}
		if req.Priority != nil {
			updates["priority"] = *req.Priority
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if set, due, err := parseDate(req.DueDate); err != nil {
			return err
		} else if set {
			updates["due_date"] = due
		}
		if len(updates) > 0 {
			if err := tx.Model(&demand).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Assignees != nil {
			if err := tx.Where("demand_id = ?", id).Delete(&models.DemandAssignee{}).Error; err != nil {
				return err
			}
			return replaceDemandAssignees(tx, id, utils.FilterRefs("assignee", *req.Assignees))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetDemand(db, id)
}

func DeleteDemand(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var demand models.Demand
		if err := tx.First(&demand, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("demand_id = ?", id).Delete(&models.DemandAssignee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&demand).Error
	})
}

func replaceDemandAssignees(tx *gorm.DB, demandID string, assignees []string) error {
	for i, uid := range assignees {
		row := models.DemandAssignee{DemandID: demandID, UserID: uid, Position: i}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func attachDemandAssignees(db *gorm.DB, demands []models.Demand) error {
	if len(demands) == 0 {
		return nil
	}
	ids := make([]string, len(demands))
	for i := range demands {
		ids[i] = demands[i].ID
	}

	var rows []models.DemandAssignee
	if err := db.Where("demand_id IN ?", ids).Order("position ASC").Find(&rows).Error; err != nil {
		return err
	}
	byDemand := make(map[string][]string)
	for _, r := range rows {
		byDemand[r.DemandID] = append(byDemand[r.DemandID], r.UserID)
	}
	for i := range demands {
		demands[i].AssigneeIDs = byDemand[demands[i].ID]
		if demands[i].AssigneeIDs == nil {
			demands[i].AssigneeIDs = []string{}
		}
	}
	return nil
}
