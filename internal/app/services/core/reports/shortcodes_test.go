package reports

import (
	"testing"

	"simoly-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveShortcodes(t *testing.T) {
	t.Run("nil config falls back to the default manifest", func(t *testing.T) {
		manifest := ResolveShortcodes(nil)

		assert.Len(t, manifest.TextSections, 3)
		assert.Len(t, manifest.ChartSections, 2)
		assert.Len(t, manifest.TableSections, 1)
		assert.Equal(t, "[section_summary_001]", manifest.TextSections[0].Shortcode)
		assert.Equal(t, "Riepilogo", manifest.TextSections[0].Title)
		assert.Equal(t, "bar", manifest.ChartSections[0].Type)
		assert.Equal(t, "pie", manifest.ChartSections[1].Type)
		assert.Equal(t, "[table_results_001]", manifest.TableSections[0].Shortcode)
	})

	t.Run("config without shortcodes falls back to the default manifest", func(t *testing.T) {
		manifest := ResolveShortcodes(&models.AIConfig{Model: "gpt-4o"})

		assert.Equal(t, DefaultShortcodeManifest(), manifest)
	})

	t.Run("admin manifest wins verbatim", func(t *testing.T) {
		custom := &models.ShortcodeManifest{
			TextSections: []models.ShortcodeSection{
				{Shortcode: "[section_custom_001]", Title: "Sezione personalizzata"},
			},
		}
		manifest := ResolveShortcodes(&models.AIConfig{Shortcodes: custom})

		assert.Same(t, custom, manifest)
	})

	t.Run("explicitly empty manifest is honored", func(t *testing.T) {
		empty := &models.ShortcodeManifest{}
		manifest := ResolveShortcodes(&models.AIConfig{Shortcodes: empty})

		assert.Same(t, empty, manifest)
		assert.Empty(t, manifest.TextSections)
	})

	t.Run("malformed shortcode tokens pass through unchanged", func(t *testing.T) {
		custom := &models.ShortcodeManifest{
			TextSections: []models.ShortcodeSection{
				{Shortcode: "not-a-token", Title: "Comunque valido"},
			},
		}
		manifest := ResolveShortcodes(&models.AIConfig{Shortcodes: custom})

		assert.Equal(t, "not-a-token", manifest.TextSections[0].Shortcode)
	})

	t.Run("default manifest is a fresh value per call", func(t *testing.T) {
		first := DefaultShortcodeManifest()
		first.TextSections[0].Title = "mutated"

		second := DefaultShortcodeManifest()
		assert.Equal(t, "Riepilogo", second.TextSections[0].Title)
	})
}
