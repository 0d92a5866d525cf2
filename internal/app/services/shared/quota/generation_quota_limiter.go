package quota

import (
	"context"
	"fmt"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// GenerationQuotaLimiter caps report generations per user per calendar month.
// Algorithm: fixed window counter stored in Redis, keyed by month, with a TTL
// long enough to outlive the window.
type GenerationQuotaLimiter struct {
	redis        contracts.RedisRepository
	log          *zap.Logger
	monthlyQuota int
}

func NewGenerationQuotaLimiter(redis contracts.RedisRepository, log *zap.Logger, monthlyQuota int) *GenerationQuotaLimiter {
	return &GenerationQuotaLimiter{
		redis:        redis,
		log:          log,
		monthlyQuota: monthlyQuota,
	}
}

var _ contracts.GenerationQuota = (*GenerationQuotaLimiter)(nil)

// Allow increments the caller's counter for the current month and reports
// whether the generation may proceed. A quota of zero or less disables the
// limit entirely.
func (l *GenerationQuotaLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	if l.monthlyQuota <= 0 {
		return true, nil
	}

	now := time.Now().UTC()
	key := fmt.Sprintf(constvars.RedisKeyReportQuotaFormat, now.Format("200601"), userID)

	// 32 days covers the longest month plus clock skew.
	ttl := 32 * 24 * time.Hour
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("GenerationQuotaLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return false, err
	}

	if newCount > int64(l.monthlyQuota) {
		return false, nil
	}
	return true, nil
}
