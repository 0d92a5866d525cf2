package responses

import "simoly-service/internal/app/models"

// GenerateReportResponse is the fixed wire contract of the generate endpoint;
// frontend report rendering depends on these exact top-level keys.
type GenerateReportResponse struct {
	Success  bool                   `json:"success"`
	Report   *models.ReportDocument `json:"report"`
	ReportID string                 `json:"reportId"`
}
