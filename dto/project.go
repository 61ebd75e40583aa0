package dto

type CreateProjectRequest struct {
	Name    string   `json:"name" binding:"required"`
	Client  string   `json:"client"`
	Budget  float64  `json:"budget"`
	Color   string   `json:"color"`
	Members []string `json:"members"`
}

type UpdateProjectRequest struct {
	Name    *string   `json:"name"`
	Client  *string   `json:"client"`
	Budget  *float64  `json:"budget"`
	Color   *string   `json:"color"`
	Members *[]string `json:"members"`
}
