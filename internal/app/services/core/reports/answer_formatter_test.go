package reports

import (
	"testing"

	"simoly-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatAnswers(t *testing.T) {
	singleChoice := models.Question{
		ID:   "q1",
		Text: "Come valuti il servizio?",
		Type: "single_choice",
		Options: []models.QuestionOption{
			{Value: "a", Label: "Alpha"},
			{Value: "b", Label: "Beta"},
		},
	}

	t.Run("resolves single_choice option label", func(t *testing.T) {
		formatted := FormatAnswers([]models.Question{singleChoice}, map[string]interface{}{"q1": "b"})

		assert.Len(t, formatted, 1)
		assert.Equal(t, "q1", formatted[0].ID)
		assert.Equal(t, "single_choice", formatted[0].Type)
		assert.Equal(t, "Beta", formatted[0].Answer)
		assert.Nil(t, formatted[0].Score)
	})

	t.Run("unmatched option falls back to raw value", func(t *testing.T) {
		formatted := FormatAnswers([]models.Question{singleChoice}, map[string]interface{}{"q1": "z"})

		assert.Len(t, formatted, 1)
		assert.Equal(t, "z", formatted[0].Answer)
	})

	t.Run("skips questions with no answer", func(t *testing.T) {
		questions := []models.Question{
			singleChoice,
			{ID: "q2", Text: "Mai risposta", Type: "single_choice"},
		}
		formatted := FormatAnswers(questions, map[string]interface{}{"q1": "a"})

		assert.Len(t, formatted, 1)
		assert.Equal(t, "q1", formatted[0].ID)
	})

	t.Run("preserves question order", func(t *testing.T) {
		questions := []models.Question{
			{ID: "q3", Text: "terza", Type: "text"},
			{ID: "q1", Text: "prima", Type: "text"},
			{ID: "q2", Text: "seconda", Type: "text"},
		}
		answers := map[string]interface{}{"q1": "x", "q2": "y", "q3": "z"}
		formatted := FormatAnswers(questions, answers)

		assert.Equal(t, "q3", formatted[0].ID)
		assert.Equal(t, "q1", formatted[1].ID)
		assert.Equal(t, "q2", formatted[2].ID)
	})

	t.Run("multiple_choice resolves each element and keeps order", func(t *testing.T) {
		question := models.Question{
			ID:   "q1",
			Text: "Scegli tutte le opzioni che si applicano",
			Type: "multiple_choice",
			Options: []models.QuestionOption{
				{Value: "a", Label: "Alpha"},
				{Value: "b", Label: "Beta"},
			},
		}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{
			"q1": []interface{}{"b", "z", "a"},
		})

		assert.Len(t, formatted, 1)
		assert.Equal(t, []interface{}{"Beta", "z", "Alpha"}, formatted[0].Answer)
	})

	t.Run("multiple_choice passes malformed non-array answers through", func(t *testing.T) {
		question := models.Question{ID: "q1", Text: "domanda", Type: "multiple_choice"}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{"q1": "not-an-array"})

		assert.Equal(t, "not-an-array", formatted[0].Answer)
	})

	t.Run("scale defaults min and max", func(t *testing.T) {
		question := models.Question{ID: "q1", Text: "Da 1 a 5", Type: "scale"}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{"q1": float64(4)})

		scale, ok := formatted[0].Answer.(models.ScaleAnswer)
		assert.True(t, ok)
		assert.Equal(t, 1, scale.Min)
		assert.Equal(t, 5, scale.Max)
		assert.Equal(t, float64(4), scale.Value)
	})

	t.Run("scale keeps configured bounds and labels", func(t *testing.T) {
		min, max := 0, 10
		question := models.Question{
			ID:       "q1",
			Text:     "Da 0 a 10",
			Type:     "scale",
			Min:      &min,
			Max:      &max,
			MinLabel: "Per niente",
			MaxLabel: "Moltissimo",
		}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{"q1": float64(7)})

		scale := formatted[0].Answer.(models.ScaleAnswer)
		assert.Equal(t, 0, scale.Min)
		assert.Equal(t, 10, scale.Max)
		assert.Equal(t, "Per niente", scale.MinLabel)
		assert.Equal(t, "Moltissimo", scale.MaxLabel)
	})

	t.Run("score is the raw answer only when numeric", func(t *testing.T) {
		questions := []models.Question{
			{ID: "num", Text: "numero", Type: "scale"},
			{ID: "str", Text: "testo", Type: "text"},
		}
		formatted := FormatAnswers(questions, map[string]interface{}{
			"num": float64(3),
			"str": "ciao",
		})

		assert.NotNil(t, formatted[0].Score)
		assert.Equal(t, float64(3), *formatted[0].Score)
		assert.Nil(t, formatted[1].Score)
	})

	t.Run("numeric score survives integer decoding", func(t *testing.T) {
		questions := []models.Question{{ID: "q1", Text: "numero", Type: "scale"}}
		formatted := FormatAnswers(questions, map[string]interface{}{"q1": int64(2)})

		assert.NotNil(t, formatted[0].Score)
		assert.Equal(t, float64(2), *formatted[0].Score)
	})

	t.Run("unknown type passes raw value through", func(t *testing.T) {
		question := models.Question{ID: "q1", Text: "libera", Type: "free_text"}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{"q1": "qualsiasi cosa"})

		assert.Equal(t, "qualsiasi cosa", formatted[0].Answer)
	})

	t.Run("numeric option values match numeric answers", func(t *testing.T) {
		question := models.Question{
			ID:   "q1",
			Text: "dropdown numerico",
			Type: "dropdown",
			Options: []models.QuestionOption{
				{Value: float64(1), Label: "Uno"},
				{Value: float64(2), Label: "Due"},
			},
		}
		formatted := FormatAnswers([]models.Question{question}, map[string]interface{}{"q1": int64(2)})

		assert.Equal(t, "Due", formatted[0].Answer)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		answers := map[string]interface{}{"q1": "b"}
		FormatAnswers([]models.Question{singleChoice}, answers)

		assert.Equal(t, "b", answers["q1"])
		assert.Equal(t, "Beta", singleChoice.Options[1].Label)
	})
}
