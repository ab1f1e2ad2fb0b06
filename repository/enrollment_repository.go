package repository

import (
	"context"

	"github.com/Adarshjain3011/LearnSphere/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollmentRepository mutates the course's enrolled-user set. AddIfAbsent
// must be atomic at the storage layer: the verification endpoint and the
// webhook can race for the same payment and a check-then-create here would
// lose that race.
type EnrollmentRepository interface {
	// AddIfAbsent inserts the (courseID, userID) pair if it does not exist.
	// created is false when the user was already enrolled.
	AddIfAbsent(ctx context.Context, courseID, userID string) (created bool, err error)
}

type gormEnrollmentRepo struct {
	db *gorm.DB
}

func NewGormEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepo{db: db}
}

func (r *gormEnrollmentRepo) AddIfAbsent(ctx context.Context, courseID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Enrollment{CourseID: courseID, UserID: userID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
