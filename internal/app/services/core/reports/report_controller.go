package reports

import (
	"context"
	"net/http"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"
	"simoly-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ReportUsecase  ReportUsecase
}

func NewReportController(logger *zap.Logger, internalConfig *config.InternalConfig, reportUsecase ReportUsecase) *ReportController {
	return &ReportController{
		Log:            logger,
		InternalConfig: internalConfig,
		ReportUsecase:  reportUsecase,
	}
}

func (ctrl *ReportController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// GenerateReport serves the generation endpoint. Its wire contract is fixed:
// {success, report, reportId} on success, {success:false, error} on failure.
func (ctrl *ReportController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GenerateReport)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrGenerateInvalidRequest(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.ReportUsecase.GenerateReport(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *ReportController) FindReportByID(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, constvars.URLParamReportID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	report, err := ctrl.ReportUsecase.FindReportByID(ctx, reportID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindReportSuccessMessage, report)
}

// FindReports lists the caller's reports. The session user wins; the query
// parameter only applies to unauthenticated internal calls.
func (ctrl *ReportController) FindReports(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_SESSION_USER_ID_KEY).(string)
	if userID == "" {
		userID = r.URL.Query().Get(constvars.QueryParamUserID)
	}
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.QueryParamUserID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	reports, err := ctrl.ReportUsecase.FindReportsByUserID(ctx, userID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindReportsSuccessMessage, reports)
}
