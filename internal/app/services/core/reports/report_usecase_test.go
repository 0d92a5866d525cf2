package reports

import (
	"context"
	"errors"
	"testing"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/dto/requests"
	"simoly-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubQuestionnaireRepo struct {
	questionnaire *models.Questionnaire
}

func (s *stubQuestionnaireRepo) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	return "", nil
}
func (s *stubQuestionnaireRepo) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	return s.questionnaire, nil
}
func (s *stubQuestionnaireRepo) FindLatestQuestionnaire(ctx context.Context) (*models.Questionnaire, error) {
	return s.questionnaire, nil
}
func (s *stubQuestionnaireRepo) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	return nil
}
func (s *stubQuestionnaireRepo) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	return nil
}

type stubResponseRepo struct {
	response *models.QuestionnaireResponse
}

func (s *stubResponseRepo) CreateResponse(ctx context.Context, response *models.QuestionnaireResponse) (string, error) {
	return "", nil
}
func (s *stubResponseRepo) FindResponseByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	return s.response, nil
}
func (s *stubResponseRepo) FindResponseByQuestionnaireAndUser(ctx context.Context, questionnaireID, userID string) (*models.QuestionnaireResponse, error) {
	return s.response, nil
}
func (s *stubResponseRepo) UpdateResponse(ctx context.Context, response *models.QuestionnaireResponse) error {
	return nil
}

type stubAIConfigRepo struct {
	aiConfig *models.AIConfig
}

func (s *stubAIConfigRepo) CreateAIConfig(ctx context.Context, aiConfig *models.AIConfig) (string, error) {
	return "", nil
}
func (s *stubAIConfigRepo) FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error) {
	return s.aiConfig, nil
}

type stubReportRepo struct {
	created  []*models.Report
	createID string
}

func (s *stubReportRepo) CreateReport(ctx context.Context, report *models.Report) (string, error) {
	s.created = append(s.created, report)
	if s.createID == "" {
		return "generated-report-id", nil
	}
	return s.createID, nil
}
func (s *stubReportRepo) FindReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	return nil, nil
}
func (s *stubReportRepo) FindReportsByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	return nil, nil
}

type stubChatClient struct {
	lastInput *contracts.ChatCompletionInput
	content   string
	err       error
}

func (s *stubChatClient) CreateChatCompletion(ctx context.Context, input *contracts.ChatCompletionInput) (string, error) {
	s.lastInput = input
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

type stubQuota struct {
	allowed bool
}

func (s *stubQuota) Allow(ctx context.Context, userID string) (bool, error) {
	return s.allowed, nil
}

func newTestUsecase(questionnaire *models.Questionnaire, response *models.QuestionnaireResponse, aiConfig *models.AIConfig, chatClient *stubChatClient, reportRepo *stubReportRepo) ReportUsecase {
	return NewReportUsecase(
		&stubQuestionnaireRepo{questionnaire: questionnaire},
		&stubResponseRepo{response: response},
		&stubAIConfigRepo{aiConfig: aiConfig},
		reportRepo,
		chatClient,
		&stubQuota{allowed: true},
		nil,
		nil,
		&config.InternalConfig{},
		zap.NewNop(),
	)
}

func testQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		ID:    "qn1",
		Title: "Valutazione del servizio",
		Questions: []models.Question{
			{
				ID:   "q1",
				Text: "Come valuti il servizio?",
				Type: "single_choice",
				Options: []models.QuestionOption{
					{Value: "a", Label: "Alpha"},
					{Value: "b", Label: "Beta"},
				},
			},
		},
	}
}

func testResponse() *models.QuestionnaireResponse {
	return &models.QuestionnaireResponse{
		ID:              "resp1",
		QuestionnaireID: "qn1",
		UserID:          "user1",
		Status:          constvars.ResponseStatusCompleted,
		Answers:         map[string]interface{}{"q1": "b"},
	}
}

func TestGenerateReport(t *testing.T) {
	validRequest := &requests.GenerateReport{QuestionnaireID: "qn1", UserID: "user1"}

	t.Run("missing identifiers fail with bad request and nothing persists", func(t *testing.T) {
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, &stubChatClient{content: "{}"}, reportRepo)

		_, err := uc.GenerateReport(context.Background(), &requests.GenerateReport{QuestionnaireID: "", UserID: "user1"})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("absent response fails with not found and nothing persists", func(t *testing.T) {
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), nil, nil, &stubChatClient{content: "{}"}, reportRepo)

		_, err := uc.GenerateReport(context.Background(), validRequest)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("absent questionnaire fails with not found", func(t *testing.T) {
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(nil, testResponse(), nil, &stubChatClient{content: "{}"}, reportRepo)

		_, err := uc.GenerateReport(context.Background(), validRequest)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("happy path returns the document and persisted id", func(t *testing.T) {
		chatClient := &stubChatClient{content: `{"title":"Report di valutazione","sections":[{"title":"Riepilogo","content":"Tutto bene","type":"text"}]}`}
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, reportRepo)

		result, err := uc.GenerateReport(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "generated-report-id", result.ReportID)
		assert.Equal(t, "Report di valutazione", result.Report.Title)
		assert.Len(t, reportRepo.created, 1)
		assert.Equal(t, "user1", reportRepo.created[0].UserID)
		assert.Equal(t, "qn1", reportRepo.created[0].QuestionnaireID)
	})

	t.Run("resolved option label reaches the model prompt", func(t *testing.T) {
		chatClient := &stubChatClient{content: `{"title":"r"}`}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, &stubReportRepo{})

		_, err := uc.GenerateReport(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.Len(t, chatClient.lastInput.Messages, 2)
		assert.Contains(t, chatClient.lastInput.Messages[1].Content, "Beta")
		assert.Contains(t, chatClient.lastInput.Messages[1].Content, "[section_summary_001]")
	})

	t.Run("defaults apply when no configuration row exists", func(t *testing.T) {
		chatClient := &stubChatClient{content: `{"title":"r"}`}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, &stubReportRepo{})

		_, err := uc.GenerateReport(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DefaultModelName, chatClient.lastInput.Model)
		assert.Equal(t, constvars.DefaultModelTemp, chatClient.lastInput.Temperature)
		assert.Equal(t, constvars.DefaultModelMaxTokens, chatClient.lastInput.MaxTokens)
		assert.Equal(t, constvars.DefaultSystemPrompt, chatClient.lastInput.Messages[0].Content)
	})

	t.Run("configuration row overrides model parameters", func(t *testing.T) {
		aiConfig := &models.AIConfig{Model: "gpt-4o-mini", Temperature: 1.2, MaxTokens: 800}
		chatClient := &stubChatClient{content: `{"title":"r"}`}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), aiConfig, chatClient, &stubReportRepo{})

		_, err := uc.GenerateReport(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", chatClient.lastInput.Model)
		assert.Equal(t, 1.2, chatClient.lastInput.Temperature)
		assert.Equal(t, 800, chatClient.lastInput.MaxTokens)
	})

	t.Run("upstream failure aborts before persistence", func(t *testing.T) {
		chatClient := &stubChatClient{err: exceptions.ErrModelTransport(errors.New("connection refused"))}
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, reportRepo)

		_, err := uc.GenerateReport(context.Background(), validRequest)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("non-JSON model content fails with unprocessable entity and no write", func(t *testing.T) {
		chatClient := &stubChatClient{content: "Ecco il tuo report: va tutto bene!"}
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, reportRepo)

		_, err := uc.GenerateReport(context.Background(), validRequest)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("quota exhaustion fails with too many requests", func(t *testing.T) {
		reportRepo := &stubReportRepo{}
		uc := NewReportUsecase(
			&stubQuestionnaireRepo{questionnaire: testQuestionnaire()},
			&stubResponseRepo{response: testResponse()},
			&stubAIConfigRepo{},
			reportRepo,
			&stubChatClient{content: `{"title":"r"}`},
			&stubQuota{allowed: false},
			nil,
			nil,
			&config.InternalConfig{},
			zap.NewNop(),
		)

		_, err := uc.GenerateReport(context.Background(), &requests.GenerateReport{QuestionnaireID: "qn1", UserID: "user1"})

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Empty(t, reportRepo.created)
	})

	t.Run("keyed-map model output is accepted", func(t *testing.T) {
		chatClient := &stubChatClient{content: `{"title":"r","textSections":{"[section_summary_001]":{"title":"Riepilogo","content":"ok"}}}`}
		reportRepo := &stubReportRepo{}
		uc := newTestUsecase(testQuestionnaire(), testResponse(), nil, chatClient, reportRepo)

		result, err := uc.GenerateReport(context.Background(), validRequest)

		assert.NoError(t, err)
		sections := result.Report.OrderedSections()
		assert.Len(t, sections, 1)
		assert.Equal(t, "Riepilogo", sections[0].Title)
	})
}
