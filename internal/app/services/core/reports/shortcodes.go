package reports

import (
	"simoly-service/internal/app/models"
)

// DefaultShortcodeManifest returns the built-in manifest used when no admin
// configuration provides one. A fresh value is returned on every call so
// callers can never alias the literals.
func DefaultShortcodeManifest() *models.ShortcodeManifest {
	return &models.ShortcodeManifest{
		TextSections: []models.ShortcodeSection{
			{Shortcode: "[section_summary_001]", Title: "Riepilogo"},
			{Shortcode: "[section_strengths_002]", Title: "Punti di forza"},
			{Shortcode: "[section_improvement_003]", Title: "Aree di miglioramento"},
		},
		ChartSections: []models.ShortcodeSection{
			{Shortcode: "[chart_scores_001]", Title: "Punteggi per categoria", Type: "bar"},
			{Shortcode: "[chart_distribution_002]", Title: "Distribuzione risposte", Type: "pie"},
		},
		TableSections: []models.ShortcodeSection{
			{Shortcode: "[table_results_001]", Title: "Risultati dettagliati", Type: "striped"},
		},
	}
}

// ResolveShortcodes picks the manifest driving generation. An admin-provided
// manifest wins verbatim, including an explicitly empty one; only a missing
// manifest falls back to the default. Shortcode syntax is not validated here,
// malformed tokens pass through unchanged.
func ResolveShortcodes(aiConfig *models.AIConfig) *models.ShortcodeManifest {
	if aiConfig != nil && aiConfig.Shortcodes != nil {
		return aiConfig.Shortcodes
	}
	return DefaultShortcodeManifest()
}
