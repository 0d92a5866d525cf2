package questionnaires

import (
	"context"
	"fmt"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
}

func NewQuestionnaireUsecase(
	questionnaireRepository contracts.QuestionnaireRepository,
) QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error) {
	now := time.Now().UTC()
	questionnaire := &models.Questionnaire{
		Title:       request.Title,
		Description: request.Description,
		Questions:   request.Questions,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindLatestQuestionnaire(ctx context.Context) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindLatestQuestionnaire(ctx)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("no questionnaire configured"))
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, questionnaireID string, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error) {
	existing, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}

	existing.Title = request.Title
	existing.Description = request.Description
	existing.Questions = request.Questions
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	existing, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}
	return uc.QuestionnaireRepository.DeleteQuestionnaireByID(ctx, questionnaireID)
}
