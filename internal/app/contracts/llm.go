package contracts

import "context"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionInput struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// ChatClient calls the external model provider's chat-completion endpoint and
// returns the content of the first choice.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, input *ChatCompletionInput) (string, error)
}
