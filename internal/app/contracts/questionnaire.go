package contracts

import (
	"context"

	"simoly-service/internal/app/models"
)

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindLatestQuestionnaire(ctx context.Context) (*models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}
