package contracts

import (
	"context"

	"simoly-service/internal/app/models"
)

type AIConfigRepository interface {
	CreateAIConfig(ctx context.Context, aiConfig *models.AIConfig) (string, error)
	FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error)
}
