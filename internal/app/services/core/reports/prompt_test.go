package reports

import (
	"strings"
	"testing"

	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestAssemblePrompts(t *testing.T) {
	score := 4.0
	formattedAnswers := []models.FormattedAnswer{
		{ID: "q1", Text: "Come valuti il servizio?", Type: "single_choice", Answer: "Beta", Score: nil},
		{ID: "q2", Text: "Da 1 a 5", Type: "scale", Answer: models.ScaleAnswer{Value: 4.0, Min: 1, Max: 5}, Score: &score},
	}
	manifest := DefaultShortcodeManifest()

	t.Run("defaults apply when no config exists", func(t *testing.T) {
		systemPrompt, userPrompt, err := AssemblePrompts(formattedAnswers, manifest, nil)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DefaultSystemPrompt, systemPrompt)
		assert.Contains(t, userPrompt, `"q1"`)
		assert.Contains(t, userPrompt, "[section_summary_001]")
		assert.Contains(t, userPrompt, "italiano")
	})

	t.Run("config prompts win verbatim when non-empty", func(t *testing.T) {
		aiConfig := &models.AIConfig{
			SystemPrompt: "Sei un valutatore severo.",
			UserPrompt:   "Analizza e basta.",
		}
		systemPrompt, userPrompt, err := AssemblePrompts(formattedAnswers, manifest, aiConfig)

		assert.NoError(t, err)
		assert.Equal(t, "Sei un valutatore severo.", systemPrompt)
		assert.Equal(t, "Analizza e basta.", userPrompt)
	})

	t.Run("empty config prompts fall back to defaults", func(t *testing.T) {
		systemPrompt, userPrompt, err := AssemblePrompts(formattedAnswers, manifest, &models.AIConfig{})

		assert.NoError(t, err)
		assert.Equal(t, constvars.DefaultSystemPrompt, systemPrompt)
		assert.True(t, strings.Contains(userPrompt, "[chart_scores_001]"))
	})

	t.Run("identical inputs yield identical prompts", func(t *testing.T) {
		system1, user1, err1 := AssemblePrompts(formattedAnswers, manifest, nil)
		system2, user2, err2 := AssemblePrompts(formattedAnswers, manifest, nil)

		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, system1, system2)
		assert.Equal(t, user1, user2)
	})

	t.Run("answers precede the manifest in the default template", func(t *testing.T) {
		_, userPrompt, err := AssemblePrompts(formattedAnswers, manifest, nil)

		assert.NoError(t, err)
		answersAt := strings.Index(userPrompt, `"q1"`)
		manifestAt := strings.Index(userPrompt, "[section_summary_001]")
		assert.Greater(t, manifestAt, answersAt)
	})
}
