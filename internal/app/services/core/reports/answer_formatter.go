package reports

import (
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
)

// FormatAnswers normalizes raw answers into the shape presented to the model.
// Questions are walked in their configured order and questions with no entry
// in the answers map are left out entirely. Pure function, inputs are never
// mutated.
func FormatAnswers(questions []models.Question, answers map[string]interface{}) []models.FormattedAnswer {
	formatted := make([]models.FormattedAnswer, 0, len(questions))

	for _, question := range questions {
		raw, ok := answers[question.ID]
		if !ok {
			continue
		}

		formatted = append(formatted, models.FormattedAnswer{
			ID:     question.ID,
			Text:   question.Text,
			Type:   question.Type,
			Answer: formatAnswerValue(question, raw),
			Score:  numericScore(raw),
		})
	}
	return formatted
}

func formatAnswerValue(question models.Question, raw interface{}) interface{} {
	switch question.Type {
	case constvars.QuestionTypeSingleChoice, constvars.QuestionTypeDropdown:
		return resolveOptionLabel(question.Options, raw)
	case constvars.QuestionTypeMultipleChoice:
		elements, ok := raw.([]interface{})
		if !ok {
			// Malformed non-array answers pass through untouched.
			return raw
		}
		labels := make([]interface{}, 0, len(elements))
		for _, element := range elements {
			labels = append(labels, resolveOptionLabel(question.Options, element))
		}
		return labels
	case constvars.QuestionTypeScale:
		return formatScaleAnswer(question, raw)
	default:
		return raw
	}
}

// resolveOptionLabel returns the label of the first option whose value equals
// the raw answer. No match is not an error, the raw value stands in.
func resolveOptionLabel(options []models.QuestionOption, raw interface{}) interface{} {
	for _, option := range options {
		if sameValue(option.Value, raw) {
			return option.Label
		}
	}
	return raw
}

func formatScaleAnswer(question models.Question, raw interface{}) models.ScaleAnswer {
	min := constvars.ScaleDefaultMin
	if question.Min != nil {
		min = *question.Min
	}
	max := constvars.ScaleDefaultMax
	if question.Max != nil {
		max = *question.Max
	}
	return models.ScaleAnswer{
		Value:    raw,
		Min:      min,
		Max:      max,
		MinLabel: question.MinLabel,
		MaxLabel: question.MaxLabel,
	}
}

// sameValue compares option values against raw answers across the numeric
// representations JSON and BSON decoding produce.
func sameValue(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return false
}

// numericScore surfaces the raw answer as a score hint when it is numeric.
func numericScore(raw interface{}) *float64 {
	if f, ok := toFloat(raw); ok {
		return &f
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
