package dto

type CreateColumnRequest struct {
	Title    string `json:"title" binding:"required"`
	Position int    `json:"position"`
}

type UpdateColumnRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}
