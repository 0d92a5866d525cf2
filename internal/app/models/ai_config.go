package models

// ShortcodeSection is one content slot the model must fill. Shortcode is the
// stable machine-parseable token, e.g. "[section_summary_001]".
type ShortcodeSection struct {
	Shortcode string `json:"shortcode" bson:"shortcode"`
	Title     string `json:"title" bson:"title"`
	Type      string `json:"type,omitempty" bson:"type,omitempty"`
}

// ShortcodeManifest lists every content slot to generate, grouped by rendering
// kind. An explicitly empty manifest is a valid admin choice and is honored.
type ShortcodeManifest struct {
	TextSections  []ShortcodeSection `json:"textSections" bson:"textSections"`
	ChartSections []ShortcodeSection `json:"chartSections" bson:"chartSections"`
	TableSections []ShortcodeSection `json:"tableSections" bson:"tableSections"`
}

// AIConfig is the admin-managed generation configuration. Zero values fall
// back to the built-in defaults at generation time; a nil Shortcodes pointer
// means "use the default manifest" while a non-nil empty one means "generate
// nothing".
type AIConfig struct {
	ID           string             `json:"id" bson:"_id,omitempty"`
	Model        string             `json:"model,omitempty" bson:"model,omitempty"`
	Temperature  float64            `json:"temperature,omitempty" bson:"temperature,omitempty"`
	MaxTokens    int                `json:"maxTokens,omitempty" bson:"maxTokens,omitempty"`
	SystemPrompt string             `json:"systemPrompt,omitempty" bson:"systemPrompt,omitempty"`
	UserPrompt   string             `json:"userPrompt,omitempty" bson:"userPrompt,omitempty"`
	Shortcodes   *ShortcodeManifest `json:"shortcodes,omitempty" bson:"shortcodes,omitempty"`
	TimeModel    `bson:",inline"`
}
