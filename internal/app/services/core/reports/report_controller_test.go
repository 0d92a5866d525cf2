package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/dto/responses"
	"simoly-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubReportUsecase struct {
	generateResult *responses.GenerateReportResponse
	generateErr    error
}

func (s *stubReportUsecase) GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GenerateReportResponse, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.generateResult, nil
}
func (s *stubReportUsecase) FindReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	return nil, nil
}
func (s *stubReportUsecase) FindReportsByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	return nil, nil
}

func newTestController(usecase ReportUsecase) *ReportController {
	internalConfig := &config.InternalConfig{
		App: config.App{RequestTimeoutInSeconds: 5},
	}
	return NewReportController(zap.NewNop(), internalConfig, usecase)
}

func TestGenerateReportEndpoint(t *testing.T) {
	t.Run("success carries the fixed wire contract", func(t *testing.T) {
		usecase := &stubReportUsecase{
			generateResult: &responses.GenerateReportResponse{
				Success: true,
				Report: &models.ReportDocument{
					Title:    "Report",
					Sections: []models.ReportSection{{Title: "Riepilogo", Content: "ok", Type: "text"}},
				},
				ReportID: "abc123",
			},
		}
		ctrl := newTestController(usecase)

		req := httptest.NewRequest("POST", "/api/v1/reports/generate", strings.NewReader(`{"questionnaireId":"qn1","userId":"user1"}`))
		rr := httptest.NewRecorder()
		ctrl.GenerateReport(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, "abc123", payload["reportId"])
		assert.NotNil(t, payload["report"])
	})

	t.Run("missing identifiers fail with 400 and an error field", func(t *testing.T) {
		ctrl := newTestController(&stubReportUsecase{})

		req := httptest.NewRequest("POST", "/api/v1/reports/generate", strings.NewReader(`{"questionnaireId":"qn1"}`))
		rr := httptest.NewRecorder()
		ctrl.GenerateReport(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["success"])
		assert.NotEmpty(t, payload["error"])
	})

	t.Run("pipeline failures surface their status and message", func(t *testing.T) {
		usecase := &stubReportUsecase{
			generateErr: exceptions.ErrResponseNotFound(nil),
		}
		ctrl := newTestController(usecase)

		req := httptest.NewRequest("POST", "/api/v1/reports/generate", strings.NewReader(`{"questionnaireId":"qn1","userId":"user1"}`))
		rr := httptest.NewRecorder()
		ctrl.GenerateReport(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["success"])
		assert.NotEmpty(t, payload["error"])
	})

	t.Run("malformed body fails with 400", func(t *testing.T) {
		ctrl := newTestController(&stubReportUsecase{})

		req := httptest.NewRequest("POST", "/api/v1/reports/generate", strings.NewReader(`{not json`))
		rr := httptest.NewRecorder()
		ctrl.GenerateReport(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
