package questionnaires

import (
	"context"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
)

type QuestionnaireUsecase interface {
	CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindLatestQuestionnaire(ctx context.Context) (*models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaireID string, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}
