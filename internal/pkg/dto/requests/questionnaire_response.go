package requests

type SubmitQuestionnaireResponse struct {
	QuestionnaireID string                 `json:"questionnaireId" validate:"required"`
	UserID          string                 `json:"userId" validate:"required"`
	Answers         map[string]interface{} `json:"answers" validate:"required"`
}

type UpdateQuestionnaireResponse struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}
