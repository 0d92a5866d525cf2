package models

import (
	"sort"
	"time"

	"simoly-service/internal/pkg/constvars"
)

// FormattedAnswer is the normalized representation of one answered question,
// readable by both humans and the model. Answer is type-dependent: an option
// label, a slice of labels, a ScaleAnswer, or the raw value unchanged. Score
// carries the raw answer when it was numeric, as a hint for chart generation.
type FormattedAnswer struct {
	ID     string      `json:"id"`
	Text   string      `json:"text"`
	Type   string      `json:"type"`
	Answer interface{} `json:"answer"`
	Score  *float64    `json:"score"`
}

// ScaleAnswer is the formatted shape of a scale question answer.
type ScaleAnswer struct {
	Value    interface{} `json:"value"`
	Min      int         `json:"min"`
	Max      int         `json:"max"`
	MinLabel string      `json:"minLabel,omitempty"`
	MaxLabel string      `json:"maxLabel,omitempty"`
}

// ReportSection is one rendered block of a report, typed by rendering kind
// (text, bar-chart, pie-chart).
type ReportSection struct {
	Title     string      `json:"title" bson:"title"`
	Content   interface{} `json:"content" bson:"content"`
	Type      string      `json:"type" bson:"type"`
	ChartData interface{} `json:"chartData,omitempty" bson:"chartData,omitempty"`
}

// SectionContent is the value shape of the historical keyed-map report layout,
// where sections are indexed by shortcode instead of ordered.
type SectionContent struct {
	Title     string      `json:"title,omitempty" bson:"title,omitempty"`
	Content   interface{} `json:"content,omitempty" bson:"content,omitempty"`
	Type      string      `json:"type,omitempty" bson:"type,omitempty"`
	ChartData interface{} `json:"chartData,omitempty" bson:"chartData,omitempty"`
}

// ReportDocument is the generated report as returned by the model and served
// to readers. Two persisted shapes exist historically: an ordered Sections
// list, and keyed maps per rendering kind. Both decode; OrderedSections
// normalizes to the list form. Documents are immutable once persisted.
type ReportDocument struct {
	Title    string          `json:"title" bson:"title"`
	Date     string          `json:"date,omitempty" bson:"date,omitempty"`
	Sections []ReportSection `json:"sections,omitempty" bson:"sections,omitempty"`

	TextSections  map[string]SectionContent `json:"textSections,omitempty" bson:"textSections,omitempty"`
	ChartSections map[string]SectionContent `json:"chartSections,omitempty" bson:"chartSections,omitempty"`
	TableSections map[string]SectionContent `json:"tableSections,omitempty" bson:"tableSections,omitempty"`
}

// OrderedSections returns the ordered section list. When the document was
// stored in the keyed-map shape, the maps are folded into a list (text, then
// chart, then table groups); neither shape is treated as superseding the
// other.
func (d *ReportDocument) OrderedSections() []ReportSection {
	if len(d.Sections) > 0 {
		return d.Sections
	}

	sections := make([]ReportSection, 0, len(d.TextSections)+len(d.ChartSections)+len(d.TableSections))
	sections = append(sections, foldSectionMap(d.TextSections, constvars.SectionTypeText)...)
	sections = append(sections, foldSectionMap(d.ChartSections, constvars.SectionTypeBarChart)...)
	sections = append(sections, foldSectionMap(d.TableSections, constvars.SectionTypeText)...)
	return sections
}

func foldSectionMap(m map[string]SectionContent, fallbackType string) []ReportSection {
	if len(m) == 0 {
		return nil
	}
	shortcodes := make([]string, 0, len(m))
	for shortcode := range m {
		shortcodes = append(shortcodes, shortcode)
	}
	sort.Strings(shortcodes)

	sections := make([]ReportSection, 0, len(m))
	for _, shortcode := range shortcodes {
		content := m[shortcode]
		sectionType := content.Type
		if sectionType == "" {
			sectionType = fallbackType
		}
		title := content.Title
		if title == "" {
			title = shortcode
		}
		sections = append(sections, ReportSection{
			Title:     title,
			Content:   content.Content,
			Type:      sectionType,
			ChartData: content.ChartData,
		})
	}
	return sections
}

// Report is the persisted record wrapping a generated document.
type Report struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	UserID          string         `json:"userId" bson:"user_id"`
	QuestionnaireID string         `json:"questionnaireId" bson:"questionnaire_id"`
	Title           string         `json:"title" bson:"title"`
	Content         ReportDocument `json:"content" bson:"content"`
	CreatedAt       time.Time      `json:"createdAt" bson:"created_at"`
}
