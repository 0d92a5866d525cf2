package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestReportDocumentDualShape(t *testing.T) {
	t.Run("decodes the ordered list shape", func(t *testing.T) {
		payload := `{
			"title": "Report",
			"date": "2026-09-01",
			"sections": [
				{"title": "Riepilogo", "content": "ok", "type": "text"},
				{"title": "Punteggi", "content": null, "type": "bar-chart", "chartData": {"labels": ["a"]}}
			]
		}`

		var document ReportDocument
		err := json.Unmarshal([]byte(payload), &document)

		assert.NoError(t, err)
		sections := document.OrderedSections()
		assert.Len(t, sections, 2)
		assert.Equal(t, "Riepilogo", sections[0].Title)
		assert.Equal(t, "bar-chart", sections[1].Type)
		assert.NotNil(t, sections[1].ChartData)
	})

	t.Run("decodes the keyed-map shape", func(t *testing.T) {
		payload := `{
			"title": "Report",
			"textSections": {
				"[section_summary_001]": {"title": "Riepilogo", "content": "ok"},
				"[section_strengths_002]": {"content": "forte"}
			},
			"chartSections": {
				"[chart_scores_001]": {"title": "Punteggi", "content": "dati", "type": "pie-chart"}
			}
		}`

		var document ReportDocument
		err := json.Unmarshal([]byte(payload), &document)

		assert.NoError(t, err)
		assert.Empty(t, document.Sections)
		assert.Len(t, document.TextSections, 2)
	})

	t.Run("folds keyed maps in deterministic order", func(t *testing.T) {
		document := ReportDocument{
			TextSections: map[string]SectionContent{
				"[section_strengths_002]": {Title: "Punti di forza", Content: "b"},
				"[section_summary_001]":   {Title: "Riepilogo", Content: "a"},
			},
			ChartSections: map[string]SectionContent{
				"[chart_scores_001]": {Title: "Punteggi", Content: "c"},
			},
			TableSections: map[string]SectionContent{
				"[table_results_001]": {Content: "d"},
			},
		}

		sections := document.OrderedSections()

		assert.Len(t, sections, 4)
		assert.Equal(t, "Riepilogo", sections[0].Title)
		assert.Equal(t, "Punti di forza", sections[1].Title)
		assert.Equal(t, "Punteggi", sections[2].Title)
		// A table entry without a title keeps its shortcode as the title.
		assert.Equal(t, "[table_results_001]", sections[3].Title)
	})

	t.Run("fallback section types apply per group", func(t *testing.T) {
		document := ReportDocument{
			TextSections:  map[string]SectionContent{"[section_summary_001]": {Content: "a"}},
			ChartSections: map[string]SectionContent{"[chart_scores_001]": {Content: "b"}},
		}

		sections := document.OrderedSections()

		assert.Equal(t, "text", sections[0].Type)
		assert.Equal(t, "bar-chart", sections[1].Type)
	})

	t.Run("explicit section type wins over the fallback", func(t *testing.T) {
		document := ReportDocument{
			ChartSections: map[string]SectionContent{
				"[chart_distribution_002]": {Title: "Distribuzione", Type: "pie-chart"},
			},
		}

		sections := document.OrderedSections()
		assert.Equal(t, "pie-chart", sections[0].Type)
	})

	t.Run("ordered list wins when both shapes are present", func(t *testing.T) {
		document := ReportDocument{
			Sections:     []ReportSection{{Title: "Dalla lista", Type: "text"}},
			TextSections: map[string]SectionContent{"[section_summary_001]": {Title: "Dalla mappa"}},
		}

		sections := document.OrderedSections()
		assert.Len(t, sections, 1)
		assert.Equal(t, "Dalla lista", sections[0].Title)
	})
}
