package controllers

import (
	"errors"
	"net/http"

	"github.com/Adarshjain3011/LearnSphere/middleware"
	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseController struct {
	Courses repository.CourseRepository
	Logger  *zap.Logger
}

func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.Courses.ListPublished(c.Request.Context())
	if err != nil {
		cc.Logger.Error("Failed to list courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not fetch courses."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": courses})
}

func (cc *CourseController) GetCourse(c *gin.Context) {
	id := c.Param("id")
	course, err := cc.Courses.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Course not found."})
			return
		}
		cc.Logger.Error("Failed to fetch course", zap.String("course_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not fetch course."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": course})
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	course := &models.Course{
		CourseName:   req.CourseName,
		Description:  req.Description,
		Price:        req.Price,
		InstructorID: middleware.GetUserID(c),
		Published:    published,
	}

	if err := cc.Courses.Create(c.Request.Context(), course); err != nil {
		cc.Logger.Error("Failed to create course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not create course."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": course})
}
