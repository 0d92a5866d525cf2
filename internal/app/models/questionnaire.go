package models

// QuestionOption pairs the stored answer value with the label shown to the
// user. Value keeps the loose type it had when the questionnaire was built
// (string or number).
type QuestionOption struct {
	Value interface{} `json:"value" bson:"value"`
	Label string      `json:"label" bson:"label"`
}

type Question struct {
	ID       string           `json:"id" bson:"id"`
	Text     string           `json:"text" bson:"text"`
	Type     string           `json:"type" bson:"type"`
	Options  []QuestionOption `json:"options,omitempty" bson:"options,omitempty"`
	Min      *int             `json:"min,omitempty" bson:"min,omitempty"`
	Max      *int             `json:"max,omitempty" bson:"max,omitempty"`
	MinLabel string           `json:"minLabel,omitempty" bson:"minLabel,omitempty"`
	MaxLabel string           `json:"maxLabel,omitempty" bson:"maxLabel,omitempty"`
}

type Questionnaire struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Questions   []Question `json:"questions" bson:"questions"`
	TimeModel   `bson:",inline"`
}
