package models

// QuestionnaireResponse holds a user's raw answers keyed by question id. The
// value shape depends on the question type: scalar for choice/dropdown, array
// for multiple choice, number for scale. Answers stay mutable while the
// response status is draft and are frozen once completed.
type QuestionnaireResponse struct {
	ID              string                 `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string                 `json:"questionnaireId" bson:"questionnaire_id"`
	UserID          string                 `json:"userId" bson:"user_id"`
	Status          string                 `json:"status" bson:"status"`
	Answers         map[string]interface{} `json:"answers" bson:"answers"`
	TimeModel       `bson:",inline"`
}
