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

type UserController struct {
	DB     *gorm.DB
	Events realtime.Broadcaster
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := store.ListUsers(uc.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser is the admin-only creation flow; unlike registration it can
// set the role directly.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = constants.RoleMember
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		Role:      role,
		AvatarURL: req.AvatarURL,
	}
	if err := store.CreateUser(uc.DB, &user); err != nil {
		respondStoreError(c, err)
		return
	}

	uc.Events.Broadcast(constants.EventUserCreated, user)
	c.JSON(http.StatusOK, user)
}

// UpdateUser lets a user edit their own profile; role changes and editing
// other users require admin.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	callerID, _ := c.Get("user_id")
	callerRole, _ := c.Get("role")
	isAdmin := callerRole == constants.RoleAdmin

	if !isAdmin && callerID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != nil && !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change roles"})
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		updates["password"] = hashed
	}

	user, err := store.UpdateUser(uc.DB, id, updates)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	uc.Events.Broadcast(constants.EventUserUpdated, user)
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteUser(uc.DB, id); err != nil {
		respondStoreError(c, err)
		return
	}

	uc.Events.Broadcast(constants.EventUserDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
