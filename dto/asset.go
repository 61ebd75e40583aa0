package dto

type UploadAssetRequest struct {
	FileName  string   `json:"file_name" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	ProjectID string   `json:"project_id"`
	Tags      []string `json:"tags"`
}
