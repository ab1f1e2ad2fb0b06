package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService computes the order total from the catalog and creates the
// gateway order carrying course/user identity in its notes.
type OrderService interface {
	CreateOrder(ctx context.Context, courseIDs []string, userID string) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	courses repository.CourseRepository
	gateway PaymentGateway
	logger  *zap.Logger
}

func NewOrderService(courses repository.CourseRepository, gateway PaymentGateway, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		courses: courses,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, courseIDs []string, userID string) (*models.Order, *ServiceError) {
	if len(courseIDs) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Please provide course IDs."}
	}

	// Validate every course before touching the gateway: no partial order
	// for a mixed valid/invalid list.
	var totalAmount float64
	for _, courseID := range courseIDs {
		course, err := s.courses.FindByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ServiceError{StatusCode: 404, Message: fmt.Sprintf("Course %s not found.", courseID)}
			}
			s.logger.Error("Course lookup failed", zap.String("course_id", courseID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Could not initiate payment."}
		}

		enrolled, err := s.courses.IsUserEnrolled(ctx, courseID, userID)
		if err != nil {
			s.logger.Error("Enrollment check failed", zap.String("course_id", courseID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Could not initiate payment."}
		}
		if enrolled {
			return nil, &ServiceError{StatusCode: 400, Message: "Already enrolled in this course."}
		}

		totalAmount += course.Price
	}

	coursesNote, err := models.EncodeCourseNotes(courseIDs)
	if err != nil {
		s.logger.Error("Failed to encode course notes", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Could not initiate payment."}
	}

	req := &OrderRequest{
		// Gateway wants the smallest currency unit.
		Amount:   int64(math.Round(totalAmount * 100)),
		Currency: "INR",
		// Receipt collisions are tolerable, it is informational only.
		Receipt: "receipt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Notes: map[string]string{
			models.NotesCoursesKey: coursesNote,
			models.NotesUserIDKey:  userID,
		},
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("Gateway order creation failed",
			zap.String("user_id", userID),
			zap.Int64("amount", req.Amount),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Could not initiate payment."}
	}

	s.logger.Info("Gateway order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int64("amount", order.Amount),
		zap.Int("courses", len(courseIDs)),
	)
	return order, nil
}
