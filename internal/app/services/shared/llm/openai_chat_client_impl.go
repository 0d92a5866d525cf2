package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/contracts"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	openAIChatClientInstance contracts.ChatClient
	onceOpenAIChatClient     sync.Once
)

type openAIChatClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewOpenAIChatClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ChatClient {
	onceOpenAIChatClient.Do(func() {
		timeout := time.Duration(internalConfig.OpenAI.RequestTimeoutInSeconds) * time.Second
		client := &openAIChatClient{
			BaseUrl:    strings.TrimSuffix(internalConfig.OpenAI.BaseUrl, "/"),
			APIKey:     internalConfig.OpenAI.APIKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
		openAIChatClientInstance = client
	})
	return openAIChatClientInstance
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []contracts.ChatMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openAIChatClient) CreateChatCompletion(ctx context.Context, input *contracts.ChatCompletionInput) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("openAIChatClient.CreateChatCompletion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("model", input.Model),
	)

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model:       input.Model,
		Messages:    input.Messages,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
	})
	if err != nil {
		c.Log.Error("openAIChatClient.CreateChatCompletion error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := c.BaseUrl + constvars.ModelChatCompletionURL
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("openAIChatClient.CreateChatCompletion error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("openAIChatClient.CreateChatCompletion error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrModelTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", exceptions.ErrModelBadStatus(readErr, resp.StatusCode)
		}
		c.Log.Error("openAIChatClient.CreateChatCompletion provider returned non-200",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return "", exceptions.ErrModelBadStatus(fmt.Errorf("%s", string(bodyBytes)), resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		c.Log.Error("openAIChatClient.CreateChatCompletion error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrModelEmptyChoices(err)
	}

	if len(completion.Choices) == 0 {
		return "", exceptions.ErrModelEmptyChoices(fmt.Errorf("provider returned no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}
