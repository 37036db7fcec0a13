package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Intention is a goal the user is committing to.
type Intention struct {
	Title      string     `bson:"title" json:"title"`
	Why        string     `bson:"why,omitempty" json:"why,omitempty"`
	Category   string     `bson:"category,omitempty" json:"category,omitempty"`
	TargetDate *time.Time `bson:"target_date,omitempty" json:"target_date,omitempty"`
	IsActive   bool       `bson:"is_active" json:"is_active"`
}

// ValidateIntention checks an untyped payload against the Intention schema.
// Defaults are applied for omitted optional fields; every violation is
// reported. Unknown fields are ignored.
func ValidateIntention(raw map[string]interface{}) (*Intention, error) {
	ve := &ValidationError{}

	intention := &Intention{IsActive: true}

	if title, ok := getString(raw, "title", ve); ok {
		checkLength(title, "title", 2, 140, ve)
		intention.Title = title
	} else if _, present := raw["title"]; !present || raw["title"] == nil {
		ve.add("title", "missing required field")
	}

	if why, ok := getString(raw, "why", ve); ok {
		checkLength(why, "why", 0, 500, ve)
		intention.Why = why
	}

	if category, ok := getString(raw, "category", ve); ok {
		intention.Category = category
	}

	if targetDate, ok := getTime(raw, "target_date", ve); ok {
		intention.TargetDate = &targetDate
	}

	if isActive, ok := getBool(raw, "is_active", ve); ok {
		intention.IsActive = isActive
	}

	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return intention, nil
}

// Document renders the validated record for persistence.
func (i *Intention) Document() bson.M {
	doc := bson.M{
		"title":     i.Title,
		"is_active": i.IsActive,
	}
	if i.Why != "" {
		doc["why"] = i.Why
	}
	if i.Category != "" {
		doc["category"] = i.Category
	}
	if i.TargetDate != nil {
		doc["target_date"] = *i.TargetDate
	}
	return doc
}
