package models

// FieldSpec describes one field's constraints for client-side form
// generation.
type FieldSpec struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Required    bool        `json:"required"`
	MinLength   *int        `json:"min_length,omitempty"`
	MaxLength   *int        `json:"max_length,omitempty"`
	Minimum     *int        `json:"minimum,omitempty"`
	Maximum     *int        `json:"maximum,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Description string      `json:"description,omitempty"`
}

// SchemaDescription is the structural description of one record shape.
type SchemaDescription struct {
	Title      string      `json:"title"`
	Collection string      `json:"collection"`
	Fields     []FieldSpec `json:"fields"`
}

func intPtr(n int) *int { return &n }

// IntentionSchema describes the Intention record shape.
func IntentionSchema() SchemaDescription {
	return SchemaDescription{
		Title:      "Intention",
		Collection: "intention",
		Fields: []FieldSpec{
			{Name: "title", Type: "string", Required: true, MinLength: intPtr(2), MaxLength: intPtr(140), Description: "Short, specific intention"},
			{Name: "why", Type: "string", MaxLength: intPtr(500), Description: "Deeper reason/meaning"},
			{Name: "category", Type: "string", Description: "Area of life: health, career, love, etc."},
			{Name: "target_date", Type: "timestamp", Description: "Optional target date for intention"},
			{Name: "is_active", Type: "boolean", Default: true, Description: "Whether this intention is currently active"},
		},
	}
}

// AffirmationSchema describes the Affirmation record shape.
func AffirmationSchema() SchemaDescription {
	return SchemaDescription{
		Title:      "Affirmation",
		Collection: "affirmation",
		Fields: []FieldSpec{
			{Name: "text", Type: "string", Required: true, MinLength: intPtr(2), MaxLength: intPtr(200), Description: "Affirmation phrase in present tense"},
			{Name: "tags", Type: "list[string]", Default: []string{}, Description: "Optional tags like confidence, money, love"},
			{Name: "intensity", Type: "integer", Minimum: intPtr(1), Maximum: intPtr(5), Default: 3, Description: "How resonant/powerful it feels now"},
		},
	}
}

// SessionSchema describes the Session record shape.
func SessionSchema() SchemaDescription {
	return SchemaDescription{
		Title:      "Session",
		Collection: "session",
		Fields: []FieldSpec{
			{Name: "intention_id", Type: "string", Description: "Related intention id as string"},
			{Name: "practice_type", Type: "string", Default: "visualization", Description: "Type: visualization, scripting, SATS, breathwork, etc."},
			{Name: "minutes", Type: "integer", Required: true, Minimum: intPtr(1), Maximum: intPtr(240), Description: "Duration in minutes"},
			{Name: "mood_before", Type: "integer", Minimum: intPtr(1), Maximum: intPtr(5), Description: "Mood before session (1-5)"},
			{Name: "mood_after", Type: "integer", Minimum: intPtr(1), Maximum: intPtr(5), Description: "Mood after session (1-5)"},
			{Name: "notes", Type: "string", MaxLength: intPtr(1000), Description: "Insights or vivid details"},
		},
	}
}
