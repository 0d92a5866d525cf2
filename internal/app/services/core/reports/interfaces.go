package reports

import (
	"context"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GenerateReportResponse, error)
	FindReportByID(ctx context.Context, reportID string) (*models.Report, error)
	FindReportsByUserID(ctx context.Context, userID string) ([]models.Report, error)
}
