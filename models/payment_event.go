package models

import "time"

// PaymentEvent is the message published to Kafka after a payment-triggered
// state change. Keys are the user id so events for one user stay ordered.
type PaymentEvent struct {
	Type      string    `json:"type"` // "payment_verified" or "student_enrolled"
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	PaymentID string    `json:"payment_id,omitempty"`
	Amount    int64     `json:"amount,omitempty"` // smallest currency unit
	Currency  string    `json:"currency,omitempty"`
	Timestamp time.Time `json:"timestamp"` // UTC event time
}

const (
	EventTypePaymentVerified = "payment_verified"
	EventTypeStudentEnrolled = "student_enrolled"
)
