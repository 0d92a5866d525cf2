package contracts

import (
	"context"

	"simoly-service/internal/app/models"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) (string, error)
	FindReportByID(ctx context.Context, reportID string) (*models.Report, error)
	FindReportsByUserID(ctx context.Context, userID string) ([]models.Report, error)
}

// ReportEventPublisher notifies downstream consumers (mailers, dashboards)
// that a report finished generating. Publishing is best-effort from the
// pipeline's point of view.
type ReportEventPublisher interface {
	PublishReportGenerated(ctx context.Context, reportID, userID, questionnaireID string) error
}

// GenerationQuota gates how many reports a user may generate per calendar
// month.
type GenerationQuota interface {
	Allow(ctx context.Context, userID string) (bool, error)
}
