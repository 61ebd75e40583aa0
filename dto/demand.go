package dto

type RequesterPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateDemandRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Requester   RequesterPayload `json:"requester" binding:"required"`
	Urgency     string           `json:"urgency" binding:"required,oneof=Baixa Media Alta Critica"`
	Priority    string           `json:"priority" binding:"omitempty,oneof=Baixa Normal Alta Urgente"`
	DueDate     *string          `json:"due_date"`
	Assignees   []string         `json:"assignees"`
}

type UpdateDemandRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Urgency     *string `json:"urgency" binding:"omitempty,oneof=Baixa Media Alta Critica"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Baixa Normal Alta Urgente"`
	// Any status to any status; changing it is manager/admin only.
	Status    *string   `json:"status" binding:"omitempty,oneof=backlog em-analise em-desenvolvimento em-teste bloqueado concluido"`
	DueDate   *string   `json:"due_date"`
	Assignees *[]string `json:"assignees"`
}
