package ai_configs

import (
	"context"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// AIConfigCachedRepository decorates the persistent repository with a short
// Redis cache for the latest row, which every report generation reads. A
// create invalidates the cache so new configurations apply immediately.
type AIConfigCachedRepository struct {
	Next  contracts.AIConfigRepository
	Redis contracts.RedisRepository
	Log   *zap.Logger
}

func NewAIConfigCachedRepository(next contracts.AIConfigRepository, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.AIConfigRepository {
	return &AIConfigCachedRepository{
		Next:  next,
		Redis: redisRepository,
		Log:   logger,
	}
}

func (r *AIConfigCachedRepository) CreateAIConfig(ctx context.Context, aiConfig *models.AIConfig) (string, error) {
	aiConfigID, err := r.Next.CreateAIConfig(ctx, aiConfig)
	if err != nil {
		return "", err
	}
	if err := r.Redis.Delete(ctx, constvars.RedisKeyLatestAIConfig); err != nil {
		return "", err
	}
	return aiConfigID, nil
}

func (r *AIConfigCachedRepository) FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error) {
	cached, err := r.Redis.Get(ctx, constvars.RedisKeyLatestAIConfig)
	if err != nil {
		// A cache failure degrades to a database read.
		r.Log.Warn("AIConfigCachedRepository cache read failed", zap.Error(err))
	} else if cached != "" {
		var aiConfig models.AIConfig
		if err := json.Unmarshal([]byte(cached), &aiConfig); err == nil {
			return &aiConfig, nil
		}
		r.Log.Warn("AIConfigCachedRepository cached value is not valid JSON, refetching")
	}

	aiConfig, err := r.Next.FindLatestAIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if aiConfig == nil {
		return nil, nil
	}

	ttl := time.Duration(constvars.RedisLatestAIConfigTTLMinutes) * time.Minute
	if err := r.Redis.Set(ctx, constvars.RedisKeyLatestAIConfig, aiConfig, ttl); err != nil {
		r.Log.Warn("AIConfigCachedRepository cache write failed", zap.Error(err))
	}
	return aiConfig, nil
}
