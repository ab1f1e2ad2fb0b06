package models

import (
	"encoding/json"
	"fmt"
)

// Notes keys form the contract for identity carried through the gateway.
// Razorpay stores note values as strings, so the course id list is a JSON
// array serialized to text; webhooks hand the same string back.
const (
	NotesCoursesKey = "courses"
	NotesUserIDKey  = "userId"
)

// Order mirrors the gateway-side order record. It is never persisted
// locally; reconciliation relies entirely on the notes payload the gateway
// round-trips back on webhook events.
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"` // minor units (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// EncodeCourseNotes serializes course ids for the gateway notes field.
func EncodeCourseNotes(courseIDs []string) (string, error) {
	b, err := json.Marshal(courseIDs)
	if err != nil {
		return "", fmt.Errorf("encode course notes: %w", err)
	}
	return string(b), nil
}

// DecodeCourseNotes parses the serialized course id list coming back from
// the gateway. Anything that is not a JSON string array is rejected.
func DecodeCourseNotes(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode course notes: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("decode course notes: empty course list")
	}
	return ids, nil
}
