package models

import "time"

type Course struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseName   string    `gorm:"type:varchar(255);not null" json:"course_name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"not null" json:"price"` // major units (rupees)
	InstructorID string    `gorm:"type:uuid;index" json:"instructor_id"`
	Published    bool      `gorm:"default:true" json:"published"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateCourseRequest struct {
	CourseName  string  `json:"course_name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Published   *bool   `json:"published"`
}
