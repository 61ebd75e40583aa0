package dto

type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=admin manager member"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin manager member"`
	AvatarURL *string `json:"avatar_url"`
}
