package ai_configs

import (
	"context"
	"fmt"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"
)

type aiConfigUsecase struct {
	AIConfigRepository contracts.AIConfigRepository
}

func NewAIConfigUsecase(
	aiConfigRepository contracts.AIConfigRepository,
) AIConfigUsecase {
	return &aiConfigUsecase{
		AIConfigRepository: aiConfigRepository,
	}
}

func (uc *aiConfigUsecase) CreateAIConfig(ctx context.Context, request *requests.CreateAIConfig) (*models.AIConfig, error) {
	now := time.Now().UTC()
	aiConfig := &models.AIConfig{
		Model:        request.Model,
		Temperature:  request.Temperature,
		MaxTokens:    request.MaxTokens,
		SystemPrompt: request.SystemPrompt,
		UserPrompt:   request.UserPrompt,
		Shortcodes:   request.Shortcodes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	aiConfigID, err := uc.AIConfigRepository.CreateAIConfig(ctx, aiConfig)
	if err != nil {
		return nil, err
	}
	aiConfig.ID = aiConfigID
	return aiConfig, nil
}

func (uc *aiConfigUsecase) FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error) {
	aiConfig, err := uc.AIConfigRepository.FindLatestAIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if aiConfig == nil {
		return nil, exceptions.ErrAIConfigNotFound(fmt.Errorf("no AI configuration exists"))
	}
	return aiConfig, nil
}
