package store

import (
	"teamboard/dto"
	"teamboard/models"
	"teamboard/utils"

	"gorm.io/gorm"
)

func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	if err := attachProjectMembers(db, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func GetProject(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	projects := []models.Project{project}
	if err := attachProjectMembers(db, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func CreateProject(db *gorm.DB, req dto.CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		Name:   req.Name,
		Client: req.Client,
		Budget: req.Budget,
		Color:  req.Color,
	}
	members := dedupe(utils.FilterRefs("member", req.Members))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return replaceProjectMembers(tx, project.ID, members)
	})
	if err != nil {
		return nil, err
	}

	return GetProject(db, project.ID)
}

func UpdateProject(db *gorm.DB, id string, req dto.UpdateProjectRequest) (*models.Project, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Client != nil {
			updates["client"] = *req.Client
		}
		if req.Budget != nil {
			updates["budget"] = *req.Budget
		}
		if req.Color != nil {
			updates["color"] = *req.Color
		}
		if len(updates) > 0 {
			if err := tx.Model(&project).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Members != nil {
			if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
				return err
			}
			return replaceProjectMembers(tx, id, dedupe(utils.FilterRefs("member", *req.Members)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetProject(db, id)
}

// DeleteProject removes the project and its memberships. Tasks that
// referenced it are kept with a nulled project reference rather than
// deleted.
func DeleteProject(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Update("project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

func replaceProjectMembers(tx *gorm.DB, projectID string, members []string) error {
	for _, uid := range members {
		row := models.ProjectMember{ProjectID: projectID, UserID: uid}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func attachProjectMembers(db *gorm.DB, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]string, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}

	var rows []models.ProjectMember
	if err := db.Where("project_id IN ?", ids).Order("user_id ASC").Find(&rows).Error; err != nil {
		return err
	}
	byProject := make(map[string][]string)
	for _, r := range rows {
		byProject[r.ProjectID] = append(byProject[r.ProjectID], r.UserID)
	}
	for i := range projects {
		projects[i].MemberIDs = byProject[projects[i].ID]
		if projects[i].MemberIDs == nil {
			projects[i].MemberIDs = []string{}
		}
	}
	return nil
}

// dedupe drops repeated ids, keeping first occurrence. The join table's
// composite key would reject duplicates anyway; filtering here keeps a
// sloppy payload from failing the whole transaction.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
