package repository

import (
	"context"

	"github.com/Adarshjain3011/LearnSphere/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository provisions per-course progress records. The unique
// index on (course_id, user_id) plus ON CONFLICT DO NOTHING keeps the
// one-record-per-pair invariant even under concurrent duplicate triggers.
type ProgressRepository interface {
	// CreateIfAbsent creates an empty progress record for the pair unless
	// one already exists. created is false on the duplicate path.
	CreateIfAbsent(ctx context.Context, courseID, userID string) (created bool, err error)
}

type gormProgressRepo struct {
	db *gorm.DB
}

func NewGormProgressRepo(db *gorm.DB) ProgressRepository {
	return &gormProgressRepo{db: db}
}

func (r *gormProgressRepo) CreateIfAbsent(ctx context.Context, courseID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&models.CourseProgress{CourseID: courseID, UserID: userID, CompletedVideos: "[]"})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
