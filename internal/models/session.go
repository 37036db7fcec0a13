package models

import "go.mongodb.org/mongo-driver/bson"

// Session is a logged practice activity. IntentionID is a weak reference:
// it is never checked against the intention collection and may dangle.
type Session struct {
	IntentionID  string `bson:"intention_id,omitempty" json:"intention_id,omitempty"`
	PracticeType string `bson:"practice_type" json:"practice_type"`
	Minutes      int    `bson:"minutes" json:"minutes"`
	MoodBefore   *int   `bson:"mood_before,omitempty" json:"mood_before,omitempty"`
	MoodAfter    *int   `bson:"mood_after,omitempty" json:"mood_after,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ValidateSession checks an untyped payload against the Session schema.
// practice_type defaults to "visualization".
func ValidateSession(raw map[string]interface{}) (*Session, error) {
	ve := &ValidationError{}

	session := &Session{PracticeType: "visualization"}

	if intentionID, ok := getString(raw, "intention_id", ve); ok {
		session.IntentionID = intentionID
	}

	if practiceType, ok := getString(raw, "practice_type", ve); ok {
		session.PracticeType = practiceType
	}

	if minutes, ok := getInt(raw, "minutes", ve); ok {
		checkRange(minutes, "minutes", 1, 240, ve)
		session.Minutes = minutes
	} else if _, present := raw["minutes"]; !present || raw["minutes"] == nil {
		ve.add("minutes", "missing required field")
	}

	if moodBefore, ok := getInt(raw, "mood_before", ve); ok {
		checkRange(moodBefore, "mood_before", 1, 5, ve)
		session.MoodBefore = &moodBefore
	}

	if moodAfter, ok := getInt(raw, "mood_after", ve); ok {
		checkRange(moodAfter, "mood_after", 1, 5, ve)
		session.MoodAfter = &moodAfter
	}

	if notes, ok := getString(raw, "notes", ve); ok {
		checkLength(notes, "notes", 0, 1000, ve)
		session.Notes = notes
	}

	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return session, nil
}

// Document renders the validated record for persistence.
func (s *Session) Document() bson.M {
	doc := bson.M{
		"practice_type": s.PracticeType,
		"minutes":       s.Minutes,
	}
	if s.IntentionID != "" {
		doc["intention_id"] = s.IntentionID
	}
	if s.MoodBefore != nil {
		doc["mood_before"] = *s.MoodBefore
	}
	if s.MoodAfter != nil {
		doc["mood_after"] = *s.MoodAfter
	}
	if s.Notes != "" {
		doc["notes"] = s.Notes
	}
	return doc
}
