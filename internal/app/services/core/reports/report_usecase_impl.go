package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/dto/responses"
	"simoly-service/internal/pkg/exceptions"
	"simoly-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type reportUsecase struct {
	QuestionnaireRepository         contracts.QuestionnaireRepository
	QuestionnaireResponseRepository contracts.QuestionnaireResponseRepository
	AIConfigRepository              contracts.AIConfigRepository
	ReportRepository                contracts.ReportRepository
	ChatClient                      contracts.ChatClient
	GenerationQuota                 contracts.GenerationQuota
	ReportEventPublisher            contracts.ReportEventPublisher
	Storage                         contracts.Storage
	InternalConfig                  *config.InternalConfig
	Log                             *zap.Logger
}

func NewReportUsecase(
	questionnaireRepository contracts.QuestionnaireRepository,
	questionnaireResponseRepository contracts.QuestionnaireResponseRepository,
	aiConfigRepository contracts.AIConfigRepository,
	reportRepository contracts.ReportRepository,
	chatClient contracts.ChatClient,
	generationQuota contracts.GenerationQuota,
	reportEventPublisher contracts.ReportEventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReportUsecase {
	return &reportUsecase{
		QuestionnaireRepository:         questionnaireRepository,
		QuestionnaireResponseRepository: questionnaireResponseRepository,
		AIConfigRepository:              aiConfigRepository,
		ReportRepository:                reportRepository,
		ChatClient:                      chatClient,
		GenerationQuota:                 generationQuota,
		ReportEventPublisher:            reportEventPublisher,
		Storage:                         storage,
		InternalConfig:                  internalConfig,
		Log:                             logger,
	}
}

// GenerateReport runs the whole pipeline synchronously: load response and
// questionnaire, format answers, resolve shortcodes, assemble prompts, call
// the model, parse its output, persist. Any failing step aborts the request;
// nothing is written before the final persist, so there is nothing to roll
// back.
func (uc *reportUsecase) GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GenerateReportResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GenerateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("questionnaire_id", request.QuestionnaireID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	if strings.TrimSpace(request.QuestionnaireID) == "" || strings.TrimSpace(request.UserID) == "" {
		return nil, exceptions.ErrGenerateInvalidRequest(fmt.Errorf("questionnaireId and userId are required"))
	}

	allowed, err := uc.GenerationQuota.Allow(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, exceptions.ErrReportQuotaExceeded(fmt.Errorf("monthly quota reached for user %s", request.UserID))
	}

	response, err := uc.QuestionnaireResponseRepository.FindResponseByQuestionnaireAndUser(ctx, request.QuestionnaireID, request.UserID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(fmt.Errorf("no response for questionnaire %s and user %s", request.QuestionnaireID, request.UserID))
	}

	// The questionnaire is looked up by the response's own questionnaire id so
	// answers are always matched against the configuration they were given
	// under, even when several questionnaires are active.
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, response.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", response.QuestionnaireID))
	}

	// Absent AI configuration is not an error, defaults apply.
	aiConfig, err := uc.AIConfigRepository.FindLatestAIConfig(ctx)
	if err != nil {
		return nil, err
	}

	formattedAnswers := FormatAnswers(questionnaire.Questions, response.Answers)
	manifest := ResolveShortcodes(aiConfig)

	systemPrompt, userPrompt, err := AssemblePrompts(formattedAnswers, manifest, aiConfig)
	if err != nil {
		return nil, err
	}

	content, err := uc.ChatClient.CreateChatCompletion(ctx, &contracts.ChatCompletionInput{
		Model:       resolveModelName(aiConfig),
		Temperature: resolveTemperature(aiConfig),
		MaxTokens:   resolveMaxTokens(aiConfig),
		Messages: []contracts.ChatMessage{
			{Role: constvars.ModelRoleSystem, Content: systemPrompt},
			{Role: constvars.ModelRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, err
	}

	var document models.ReportDocument
	if err := json.Unmarshal([]byte(content), &document); err != nil {
		return nil, exceptions.ErrModelContentNotJSON(err)
	}

	if document.Title == "" {
		document.Title = questionnaire.Title
	}
	if document.Date == "" {
		document.Date = time.Now().UTC().Format("2006-01-02")
	}

	report := &models.Report{
		UserID:          request.UserID,
		QuestionnaireID: request.QuestionnaireID,
		Title:           document.Title,
		Content:         document,
		CreatedAt:       time.Now().UTC(),
	}
	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}

	uc.archiveReport(ctx, requestID, reportID, request.UserID, &document)
	uc.publishGeneratedEvent(ctx, requestID, reportID, request.UserID, request.QuestionnaireID)

	uc.Log.Info("reportUsecase.GenerateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return &responses.GenerateReportResponse{
		Success:  true,
		Report:   &document,
		ReportID: reportID,
	}, nil
}

func (uc *reportUsecase) FindReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	report, err := uc.ReportRepository.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(fmt.Errorf("report %s not found", reportID))
	}
	return report, nil
}

func (uc *reportUsecase) FindReportsByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	reports, err := uc.ReportRepository.FindReportsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// archiveReport uploads a JSON copy of the generated document to object
// storage. Best-effort: failures are logged and never fail the request.
func (uc *reportUsecase) archiveReport(ctx context.Context, requestID, reportID, userID string, document *models.ReportDocument) {
	if !uc.InternalConfig.Report.ArchiveEnabled || uc.Storage == nil {
		return
	}

	data, err := json.Marshal(document)
	if err != nil {
		uc.Log.Warn("reportUsecase.archiveReport marshal failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		return
	}

	objectName := utils.GenerateReportArchiveObjectName(userID, reportID)
	if _, err := uc.Storage.UploadJSONObject(ctx, uc.InternalConfig.Minio.BucketName, objectName, data); err != nil {
		uc.Log.Warn("reportUsecase.archiveReport upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, reportID),
			zap.Error(err))
	}
}

// publishGeneratedEvent notifies downstream consumers. Best-effort as well.
func (uc *reportUsecase) publishGeneratedEvent(ctx context.Context, requestID, reportID, userID, questionnaireID string) {
	if uc.ReportEventPublisher == nil {
		return
	}
	if err := uc.ReportEventPublisher.PublishReportGenerated(ctx, reportID, userID, questionnaireID); err != nil {
		uc.Log.Warn("reportUsecase.publishGeneratedEvent publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, reportID),
			zap.Error(err))
	}
}

func resolveModelName(aiConfig *models.AIConfig) string {
	if aiConfig != nil && aiConfig.Model != "" {
		return aiConfig.Model
	}
	return constvars.DefaultModelName
}

// resolveTemperature treats zero as unset, matching how configuration rows
// omit the field.
func resolveTemperature(aiConfig *models.AIConfig) float64 {
	if aiConfig != nil && aiConfig.Temperature != 0 {
		return aiConfig.Temperature
	}
	return constvars.DefaultModelTemp
}

func resolveMaxTokens(aiConfig *models.AIConfig) int {
	if aiConfig != nil && aiConfig.MaxTokens > 0 {
		return aiConfig.MaxTokens
	}
	return constvars.DefaultModelMaxTokens
}
