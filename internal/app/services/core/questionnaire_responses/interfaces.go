package questionnaire_responses

import (
	"context"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
)

type QuestionnaireResponseUsecase interface {
	SubmitResponse(ctx context.Context, request *requests.SubmitQuestionnaireResponse) (*models.QuestionnaireResponse, error)
	FindResponseByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error)
	UpdateResponse(ctx context.Context, responseID string, request *requests.UpdateQuestionnaireResponse) (*models.QuestionnaireResponse, error)
	CompleteResponse(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error)
}
