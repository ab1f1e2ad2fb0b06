package models

// Webhook event types that trigger enrollment. Every other event is
// acknowledged and ignored.
const (
	WebhookEventPaymentCaptured = "payment.captured"
	WebhookEventOrderPaid       = "order.paid"
)

// WebhookEvent is the decoded shape of a Razorpay webhook body. Only the
// fields the enrollment flow needs are mapped; the raw bytes are what the
// signature is computed over, never this struct.
type WebhookEvent struct {
	Event   string         `json:"event"`
	Payload WebhookPayload `json:"payload"`
}

type WebhookPayload struct {
	Payment *WebhookEntityWrapper `json:"payment,omitempty"`
	Order   *WebhookEntityWrapper `json:"order,omitempty"`
}

type WebhookEntityWrapper struct {
	Entity WebhookEntity `json:"entity"`
}

type WebhookEntity struct {
	ID     string            `json:"id"`
	Amount int64             `json:"amount"`
	Notes  map[string]string `json:"notes"`
}

// TriggersEnrollment reports whether this event type should enroll.
func (e *WebhookEvent) TriggersEnrollment() bool {
	return e.Event == WebhookEventPaymentCaptured || e.Event == WebhookEventOrderPaid
}

// EnrollmentNotes extracts the course ids and user id from whichever entity
// (payment or order) carries the notes. ok is false when the notes are
// missing or malformed; callers ack the webhook anyway so the gateway does
// not retry a real-but-unusable event forever.
func (e *WebhookEvent) EnrollmentNotes() (courseIDs []string, userID string, ok bool) {
	var notes map[string]string
	switch {
	case e.Payload.Payment != nil:
		notes = e.Payload.Payment.Entity.Notes
	case e.Payload.Order != nil:
		notes = e.Payload.Order.Entity.Notes
	default:
		return nil, "", false
	}

	userID = notes[NotesUserIDKey]
	raw := notes[NotesCoursesKey]
	if userID == "" || raw == "" {
		return nil, "", false
	}

	courseIDs, err := DecodeCourseNotes(raw)
	if err != nil {
		return nil, "", false
	}
	return courseIDs, userID, true
}
