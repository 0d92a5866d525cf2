package reports

import (
	"fmt"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// AssemblePrompts builds the system and user prompt strings sent to the model.
// Admin-configured prompts win verbatim when non-empty; otherwise the default
// templates embed the JSON-serialized answers and manifest. Serialization
// follows struct field order, so identical inputs always yield identical
// prompts.
func AssemblePrompts(formattedAnswers []models.FormattedAnswer, manifest *models.ShortcodeManifest, aiConfig *models.AIConfig) (systemPrompt, userPrompt string, err error) {
	systemPrompt = constvars.DefaultSystemPrompt
	if aiConfig != nil && aiConfig.SystemPrompt != "" {
		systemPrompt = aiConfig.SystemPrompt
	}

	if aiConfig != nil && aiConfig.UserPrompt != "" {
		return systemPrompt, aiConfig.UserPrompt, nil
	}

	answersJSON, err := json.Marshal(formattedAnswers)
	if err != nil {
		return "", "", exceptions.ErrCannotMarshalJSON(err)
	}
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return "", "", exceptions.ErrCannotMarshalJSON(err)
	}

	userPrompt = fmt.Sprintf(constvars.DefaultUserPromptFormat, answersJSON, manifestJSON)
	return systemPrompt, userPrompt, nil
}
