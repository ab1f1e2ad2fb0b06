package models

import "time"

// Enrollment is one row per (course, user) pair. The composite primary key
// makes "add user to the course's enrolled set" a conditional insert, which
// keeps the operation idempotent when the verification call and the webhook
// both fire for the same payment.
type Enrollment struct {
	CourseID  string    `gorm:"type:uuid;primaryKey" json:"course_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CourseProgress tracks per-course completion for an enrolled user. The
// unique index on (course_id, user_id) is what enforces at most one progress
// record per pair; creation goes through ON CONFLICT DO NOTHING.
type CourseProgress struct {
	ID              string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID        string    `gorm:"type:uuid;uniqueIndex:idx_progress_course_user;not null" json:"course_id"`
	UserID          string    `gorm:"type:uuid;uniqueIndex:idx_progress_course_user;not null" json:"user_id"`
	CompletedVideos string    `gorm:"type:jsonb;default:'[]'" json:"completed_videos"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CourseOutcome is the per-course result of one Enroll call.
type CourseOutcome struct {
	CourseID        string `json:"course_id"`
	Enrolled        bool   `json:"enrolled"`
	AlreadyEnrolled bool   `json:"already_enrolled,omitempty"`
	Error           string `json:"error,omitempty"`
}

// EnrollmentReport collects every per-course outcome so the caller gets a
// single response no matter how many courses failed.
type EnrollmentReport struct {
	UserID   string          `json:"user_id"`
	Outcomes []CourseOutcome `json:"outcomes"`
}

func (r *EnrollmentReport) Add(outcome CourseOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// AnySucceeded reports whether at least one course mutation went through.
func (r *EnrollmentReport) AnySucceeded() bool {
	for _, o := range r.Outcomes {
		if o.Enrolled {
			return true
		}
	}
	return false
}
