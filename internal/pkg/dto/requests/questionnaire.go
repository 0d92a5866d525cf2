package requests

import "simoly-service/internal/app/models"

type CreateQuestionnaire struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions" validate:"required,min=1,dive"`
}

type UpdateQuestionnaire struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions" validate:"required,min=1,dive"`
}
