package contracts

import (
	"context"

	"simoly-service/internal/app/models"
)

type QuestionnaireResponseRepository interface {
	CreateResponse(ctx context.Context, response *models.QuestionnaireResponse) (string, error)
	FindResponseByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error)
	FindResponseByQuestionnaireAndUser(ctx context.Context, questionnaireID, userID string) (*models.QuestionnaireResponse, error)
	UpdateResponse(ctx context.Context, response *models.QuestionnaireResponse) error
}
