package repository

import (
	"context"

	"github.com/Adarshjain3011/LearnSphere/models"

	"gorm.io/gorm"
)

type CourseRepository interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
	IsUserEnrolled(ctx context.Context, courseID, userID string) (bool, error)
	ListPublished(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

type gormCourseRepo struct {
	db *gorm.DB
}

func NewGormCourseRepo(db *gorm.DB) CourseRepository {
	return &gormCourseRepo{db: db}
}

func (r *gormCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepo) IsUserEnrolled(ctx context.Context, courseID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormCourseRepo) ListPublished(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Where("published = ?", true).Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *gormCourseRepo) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}
