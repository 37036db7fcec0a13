package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateIntention_Valid(t *testing.T) {
	intention, err := ValidateIntention(map[string]interface{}{
		"title":       "Run a marathon",
		"why":         "Prove to myself I can",
		"category":    "health",
		"target_date": "2026-12-31T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Run a marathon", intention.Title)
	assert.Equal(t, "health", intention.Category)
	require.NotNil(t, intention.TargetDate)
	assert.Equal(t, 2026, intention.TargetDate.Year())
	assert.True(t, intention.IsActive, "is_active defaults to true")
}

func TestValidateIntention_MissingTitle(t *testing.T) {
	_, err := ValidateIntention(map[string]interface{}{"why": "because"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "title")
}

func TestValidateIntention_TitleBounds(t *testing.T) {
	_, err := ValidateIntention(map[string]interface{}{"title": "x"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "title")

	_, err = ValidateIntention(map[string]interface{}{"title": strings.Repeat("a", 141)})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "title")

	_, err = ValidateIntention(map[string]interface{}{"title": "ab"})
	assert.NoError(t, err)
}

func TestValidateIntention_ExplicitInactive(t *testing.T) {
	intention, err := ValidateIntention(map[string]interface{}{
		"title":     "Pause this one",
		"is_active": false,
	})
	require.NoError(t, err)
	assert.False(t, intention.IsActive)
}

func TestValidateIntention_WrongTypes(t *testing.T) {
	_, err := ValidateIntention(map[string]interface{}{
		"title":     float64(12),
		"is_active": "yes",
	})
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "is_active")
}

func TestValidateAffirmation_Defaults(t *testing.T) {
	affirmation, err := ValidateAffirmation(map[string]interface{}{
		"text": "I am enough",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, affirmation.Tags)
	assert.Equal(t, 3, affirmation.Intensity)
}

func TestValidateAffirmation_IntensityBounds(t *testing.T) {
	for _, bad := range []float64{0, 6} {
		_, err := ValidateAffirmation(map[string]interface{}{
			"text":      "I am enough",
			"intensity": bad,
		})
		require.Error(t, err, "intensity %v", bad)
		assert.Contains(t, fieldsOf(t, err), "intensity")
	}
	for _, good := range []float64{1, 5} {
		_, err := ValidateAffirmation(map[string]interface{}{
			"text":      "I am enough",
			"intensity": good,
		})
		assert.NoError(t, err, "intensity %v", good)
	}
}

func TestValidateAffirmation_TagsMustBeStrings(t *testing.T) {
	_, err := ValidateAffirmation(map[string]interface{}{
		"text": "I am enough",
		"tags": []interface{}{"money", float64(7)},
	})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "tags")
}

func TestValidateSession_MinutesBounds(t *testing.T) {
	for _, bad := range []float64{0, 241} {
		_, err := ValidateSession(map[string]interface{}{"minutes": bad})
		require.Error(t, err, "minutes %v", bad)
		assert.Contains(t, fieldsOf(t, err), "minutes")
	}
	for _, good := range []float64{1, 240} {
		session, err := ValidateSession(map[string]interface{}{"minutes": good})
		require.NoError(t, err, "minutes %v", good)
		assert.Equal(t, int(good), session.Minutes)
	}
}

func TestValidateSession_Defaults(t *testing.T) {
	session, err := ValidateSession(map[string]interface{}{"minutes": float64(20)})
	require.NoError(t, err)
	assert.Equal(t, "visualization", session.PracticeType)
	assert.Nil(t, session.MoodBefore)
	assert.Nil(t, session.MoodAfter)
}

func TestValidateSession_DanglingIntentionIDAccepted(t *testing.T) {
	session, err := ValidateSession(map[string]interface{}{
		"minutes":      float64(15),
		"intention_id": "does-not-exist-anywhere",
	})
	require.NoError(t, err)
	assert.Equal(t, "does-not-exist-anywhere", session.IntentionID)
}

func TestValidateSession_CollectsEveryViolation(t *testing.T) {
	_, err := ValidateSession(map[string]interface{}{
		"minutes":     float64(500),
		"mood_before": float64(9),
		"notes":       strings.Repeat("n", 1001),
	})
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "minutes")
	assert.Contains(t, fields, "mood_before")
	assert.Contains(t, fields, "notes")
}

func TestSchemaDescriptions(t *testing.T) {
	intention := IntentionSchema()
	assert.Equal(t, "intention", intention.Collection)

	var title *FieldSpec
	for i := range intention.Fields {
		if intention.Fields[i].Name == "title" {
			title = &intention.Fields[i]
		}
	}
	require.NotNil(t, title)
	assert.True(t, title.Required)
	require.NotNil(t, title.MaxLength)
	assert.Equal(t, 140, *title.MaxLength)

	assert.Equal(t, "affirmation", AffirmationSchema().Collection)
	assert.Equal(t, "session", SessionSchema().Collection)
}
