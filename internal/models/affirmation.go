package models

import "go.mongodb.org/mongo-driver/bson"

// Affirmation is a reinforcing statement, optionally tagged.
type Affirmation struct {
	Text      string   `bson:"text" json:"text"`
	Tags      []string `bson:"tags" json:"tags"`
	Intensity int      `bson:"intensity" json:"intensity"`
}

// ValidateAffirmation checks an untyped payload against the Affirmation
// schema. Tags default to empty; intensity defaults to 3.
func ValidateAffirmation(raw map[string]interface{}) (*Affirmation, error) {
	ve := &ValidationError{}

	affirmation := &Affirmation{Tags: []string{}, Intensity: 3}

	if text, ok := getString(raw, "text", ve); ok {
		checkLength(text, "text", 2, 200, ve)
		affirmation.Text = text
	} else if _, present := raw["text"]; !present || raw["text"] == nil {
		ve.add("text", "missing required field")
	}

	if tags, ok := getStringList(raw, "tags", ve); ok {
		affirmation.Tags = tags
	}

	if intensity, ok := getInt(raw, "intensity", ve); ok {
		checkRange(intensity, "intensity", 1, 5, ve)
		affirmation.Intensity = intensity
	}

	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return affirmation, nil
}

// Document renders the validated record for persistence. Tags are always
// present so the membership filter has a field to walk.
func (a *Affirmation) Document() bson.M {
	return bson.M{
		"text":      a.Text,
		"tags":      a.Tags,
		"intensity": a.Intensity,
	}
}
