package requests

type GenerateReport struct {
	QuestionnaireID string `json:"questionnaireId" validate:"required"`
	UserID          string `json:"userId" validate:"required"`
}
