package ai_configs

import (
	"context"
	"net/http"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"
	"simoly-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AIConfigController struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	AIConfigUsecase AIConfigUsecase
}

func NewAIConfigController(logger *zap.Logger, internalConfig *config.InternalConfig, aiConfigUsecase AIConfigUsecase) *AIConfigController {
	return &AIConfigController{
		Log:             logger,
		InternalConfig:  internalConfig,
		AIConfigUsecase: aiConfigUsecase,
	}
}

func (ctrl *AIConfigController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *AIConfigController) CreateAIConfig(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAIConfig)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.AIConfigUsecase.CreateAIConfig(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAIConfigSuccessMessage, response)
}

func (ctrl *AIConfigController) FindLatestAIConfig(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.AIConfigUsecase.FindLatestAIConfig(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAIConfigSuccessMessage, response)
}
