package ai_configs

import (
	"context"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
)

type AIConfigUsecase interface {
	CreateAIConfig(ctx context.Context, request *requests.CreateAIConfig) (*models.AIConfig, error)
	FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error)
}
