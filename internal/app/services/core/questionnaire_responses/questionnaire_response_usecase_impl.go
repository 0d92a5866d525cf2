package questionnaire_responses

import (
	"context"
	"fmt"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"
)

type questionnaireResponseUsecase struct {
	QuestionnaireRepository         contracts.QuestionnaireRepository
	QuestionnaireResponseRepository contracts.QuestionnaireResponseRepository
}

func NewQuestionnaireResponseUsecase(
	questionnaireRepository contracts.QuestionnaireRepository,
	questionnaireResponseRepository contracts.QuestionnaireResponseRepository,
) QuestionnaireResponseUsecase {
	return &questionnaireResponseUsecase{
		QuestionnaireRepository:         questionnaireRepository,
		QuestionnaireResponseRepository: questionnaireResponseRepository,
	}
}

// SubmitResponse stores a new draft. An existing response for the same
// questionnaire and user is updated in place instead, so a user keeps a
// single response per questionnaire.
func (uc *questionnaireResponseUsecase) SubmitResponse(ctx context.Context, request *requests.SubmitQuestionnaireResponse) (*models.QuestionnaireResponse, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", request.QuestionnaireID))
	}

	existing, err := uc.QuestionnaireResponseRepository.FindResponseByQuestionnaireAndUser(ctx, request.QuestionnaireID, request.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing != nil {
		if existing.Status == constvars.ResponseStatusCompleted {
			return nil, exceptions.ErrResponseAlreadyCompleted(fmt.Errorf("response %s is completed", existing.ID))
		}
		existing.Answers = request.Answers
		existing.UpdatedAt = now
		if err := uc.QuestionnaireResponseRepository.UpdateResponse(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	response := &models.QuestionnaireResponse{
		QuestionnaireID: request.QuestionnaireID,
		UserID:          request.UserID,
		Status:          constvars.ResponseStatusDraft,
		Answers:         request.Answers,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	responseID, err := uc.QuestionnaireResponseRepository.CreateResponse(ctx, response)
	if err != nil {
		return nil, err
	}
	response.ID = responseID
	return response, nil
}

func (uc *questionnaireResponseUsecase) FindResponseByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	response, err := uc.QuestionnaireResponseRepository.FindResponseByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(fmt.Errorf("response %s not found", responseID))
	}
	return response, nil
}

// UpdateResponse replaces the draft's answers. Completed responses are frozen.
func (uc *questionnaireResponseUsecase) UpdateResponse(ctx context.Context, responseID string, request *requests.UpdateQuestionnaireResponse) (*models.QuestionnaireResponse, error) {
	response, err := uc.QuestionnaireResponseRepository.FindResponseByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(fmt.Errorf("response %s not found", responseID))
	}
	if response.Status == constvars.ResponseStatusCompleted {
		return nil, exceptions.ErrResponseAlreadyCompleted(fmt.Errorf("response %s is completed", responseID))
	}

	response.Answers = request.Answers
	response.UpdatedAt = time.Now().UTC()
	if err := uc.QuestionnaireResponseRepository.UpdateResponse(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// CompleteResponse transitions a draft to completed. Completing twice is a
// conflict, not a no-op, so clients learn they raced.
func (uc *questionnaireResponseUsecase) CompleteResponse(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	response, err := uc.QuestionnaireResponseRepository.FindResponseByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(fmt.Errorf("response %s not found", responseID))
	}
	if response.Status == constvars.ResponseStatusCompleted {
		return nil, exceptions.ErrResponseAlreadyCompleted(fmt.Errorf("response %s is already completed", responseID))
	}

	response.Status = constvars.ResponseStatusCompleted
	response.UpdatedAt = time.Now().UTC()
	if err := uc.QuestionnaireResponseRepository.UpdateResponse(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}
