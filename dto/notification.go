package dto

type CreateNotificationRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message"`
	Category string `json:"category"`
}
