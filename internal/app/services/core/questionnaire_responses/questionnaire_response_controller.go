package questionnaire_responses

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

type QuestionnaireResponseController struct {
	Log                          *zap.Logger
	InternalConfig               *config.InternalConfig
	QuestionnaireResponseUsecase QuestionnaireResponseUsecase
}

func NewQuestionnaireResponseController(logger *zap.Logger, internalConfig *config.InternalConfig, questionnaireResponseUsecase QuestionnaireResponseUsecase) *QuestionnaireResponseController {
	return &QuestionnaireResponseController{
		Log:                          logger,
		InternalConfig:               internalConfig,
		QuestionnaireResponseUsecase: questionnaireResponseUsecase,
	}
}

func (ctrl *QuestionnaireResponseController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *QuestionnaireResponseController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitQuestionnaireResponse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// The session user owns the response regardless of what the body says.
	if sessionUserID, ok := r.Context().Value(constvars.CONTEXT_SESSION_USER_ID_KEY).(string); ok && sessionUserID != "" {
		request.UserID = sessionUserID
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.QuestionnaireResponseUsecase.SubmitResponse(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResponseSuccessMessage, response)
}

func (ctrl *QuestionnaireResponseController) FindResponseByID(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.QuestionnaireResponseUsecase.FindResponseByID(ctx, responseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindResponseSuccessMessage, response)
}

func (ctrl *QuestionnaireResponseController) UpdateResponse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateQuestionnaireResponse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.QuestionnaireResponseUsecase.UpdateResponse(ctx, responseID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateResponseSuccessMessage, response)
}

func (ctrl *QuestionnaireResponseController) CompleteResponse(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.QuestionnaireResponseUsecase.CompleteResponse(ctx, responseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteResponseSuccessMessage, response)
}
