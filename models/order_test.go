package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseNotesRoundTrip(t *testing.T) {
	encoded, err := EncodeCourseNotes([]string{"C1", "C2"})
	assert.NoError(t, err)
	assert.Equal(t, `["C1","C2"]`, encoded)

	decoded, err := DecodeCourseNotes(encoded)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C1", "C2"}, decoded)
}

func TestDecodeCourseNotes_RejectsBadShapes(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"a":1}`, `[1,2]`, `[]`} {
		_, err := DecodeCourseNotes(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestEnrollmentNotes_PrefersPaymentEntity(t *testing.T) {
	event := WebhookEvent{
		Event: WebhookEventPaymentCaptured,
		Payload: WebhookPayload{
			Payment: &WebhookEntityWrapper{Entity: WebhookEntity{
				Notes: map[string]string{NotesCoursesKey: `["C1"]`, NotesUserIDKey: "U1"},
			}},
			Order: &WebhookEntityWrapper{Entity: WebhookEntity{
				Notes: map[string]string{NotesCoursesKey: `["other"]`, NotesUserIDKey: "U2"},
			}},
		},
	}

	courseIDs, userID, ok := event.EnrollmentNotes()
	assert.True(t, ok)
	assert.Equal(t, []string{"C1"}, courseIDs)
	assert.Equal(t, "U1", userID)
}

func TestEnrollmentNotes_MissingEntity(t *testing.T) {
	event := WebhookEvent{Event: WebhookEventOrderPaid}
	_, _, ok := event.EnrollmentNotes()
	assert.False(t, ok)
}
