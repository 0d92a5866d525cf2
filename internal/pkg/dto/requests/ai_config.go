package requests

import "simoly-service/internal/app/models"

type CreateAIConfig struct {
	Model        string                    `json:"model"`
	Temperature  float64                   `json:"temperature" validate:"omitempty,min=0,max=2"`
	MaxTokens    int                       `json:"maxTokens" validate:"omitempty,min=1"`
	SystemPrompt string                    `json:"systemPrompt"`
	UserPrompt   string                    `json:"userPrompt"`
	Shortcodes   *models.ShortcodeManifest `json:"shortcodes"`
}
