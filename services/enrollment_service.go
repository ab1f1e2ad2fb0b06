package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher is satisfied by the Kafka payment event producer. It may be
// left nil when no broker is configured.
type EventPublisher interface {
	SendPaymentEvent(event models.PaymentEvent) error
}

// EnrollmentService applies payment-triggered enrollment. Enroll is invoked
// from both the client verification endpoint and the gateway webhook, often
// for the same payment, so every mutation it performs must be idempotent.
type EnrollmentService interface {
	Enroll(ctx context.Context, courseIDs []string, userID string) *models.EnrollmentReport
}

type enrollmentServiceImpl struct {
	courses     repository.CourseRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	progress    repository.ProgressRepository
	mailer      Mailer
	events      EventPublisher
	logger      *zap.Logger
}

func NewEnrollmentService(
	courses repository.CourseRepository,
	users repository.UserRepository,
	enrollments repository.EnrollmentRepository,
	progress repository.ProgressRepository,
	mailer Mailer,
	events EventPublisher,
	logger *zap.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		courses:     courses,
		users:       users,
		enrollments: enrollments,
		progress:    progress,
		mailer:      mailer,
		events:      events,
		logger:      logger,
	}
}

// Enroll processes each course independently: one course failing must not
// roll back courses already enrolled in the same call. The report carries
// every per-course outcome and exactly one response is written from it.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, courseIDs []string, userID string) *models.EnrollmentReport {
	report := &models.EnrollmentReport{UserID: userID}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("User lookup failed, skipping enrollment",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		for _, courseID := range courseIDs {
			report.Add(models.CourseOutcome{
				CourseID: courseID,
				Error:    fmt.Sprintf("User %s not found.", userID),
			})
		}
		return report
	}

	for _, courseID := range courseIDs {
		report.Add(s.enrollOne(ctx, courseID, user))
	}
	return report
}

func (s *enrollmentServiceImpl) enrollOne(ctx context.Context, courseID string, user *models.User) models.CourseOutcome {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CourseOutcome{
				CourseID: courseID,
				Error:    fmt.Sprintf("Course %s not found.", courseID),
			}
		}
		s.logger.Error("Course lookup failed", zap.String("course_id", courseID), zap.Error(err))
		return models.CourseOutcome{CourseID: courseID, Error: "Enrollment failed."}
	}

	created, err := s.enrollments.AddIfAbsent(ctx, courseID, user.ID)
	if err != nil {
		s.logger.Error("Failed to record enrollment",
			zap.String("course_id", courseID),
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return models.CourseOutcome{CourseID: courseID, Error: "Enrollment failed."}
	}

	// Provision progress regardless of whether the enrollment row is new:
	// a crash between the two inserts on an earlier attempt leaves the pair
	// enrolled but without progress, and this repairs it. The conditional
	// create keeps the one-record-per-pair invariant.
	if _, err := s.progress.CreateIfAbsent(ctx, courseID, user.ID); err != nil {
		s.logger.Error("Failed to create course progress",
			zap.String("course_id", courseID),
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return models.CourseOutcome{CourseID: courseID, Error: "Enrollment failed."}
	}

	if !created {
		// Duplicate trigger for the same payment, nothing more to do.
		return models.CourseOutcome{CourseID: courseID, Enrolled: true, AlreadyEnrolled: true}
	}

	s.publishEnrolled(course, user)
	s.sendEnrollmentEmail(ctx, course, user)

	return models.CourseOutcome{CourseID: courseID, Enrolled: true}
}

// publishEnrolled emits a student_enrolled event. Publish failures are
// logged only; the enrollment already committed.
func (s *enrollmentServiceImpl) publishEnrolled(course *models.Course, user *models.User) {
	if s.events == nil {
		return
	}
	event := models.PaymentEvent{
		Type:      models.EventTypeStudentEnrolled,
		UserID:    user.ID,
		CourseID:  course.ID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.SendPaymentEvent(event); err != nil {
		s.logger.Error("Failed to publish enrollment event",
			zap.String("course_id", course.ID),
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}
}

// sendEnrollmentEmail is best-effort: a mail failure never fails the
// enrollment.
func (s *enrollmentServiceImpl) sendEnrollmentEmail(ctx context.Context, course *models.Course, user *models.User) {
	subject := fmt.Sprintf("Enrolled in %s", course.CourseName)
	body := CourseEnrollmentEmailBody(course.CourseName, user.FullName())
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.logger.Warn("Failed to send enrollment email",
			zap.String("course_id", course.ID),
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}
}
