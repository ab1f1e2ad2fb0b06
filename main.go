package main

import (
	"log"
	"strings"

	"github.com/Adarshjain3011/LearnSphere/config"
	"github.com/Adarshjain3011/LearnSphere/controllers"
	"github.com/Adarshjain3011/LearnSphere/database"
	"github.com/Adarshjain3011/LearnSphere/kafka"
	"github.com/Adarshjain3011/LearnSphere/middleware"
	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"
	"github.com/Adarshjain3011/LearnSphere/routes"
	"github.com/Adarshjain3011/LearnSphere/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[LearnSphere] ❌ Failed to load config:", err)
	}

	if err := database.Connect(cfg,
		&models.Course{},
		&models.User{},
		&models.Enrollment{},
		&models.CourseProgress{},
	); err != nil {
		log.Fatal("[LearnSphere] ❌ Failed to connect to DB:", err)
	}
	defer database.Close()

	logger, err := zap.NewProduction()
	if cfg.Env != "production" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("[LearnSphere] ❌ Failed to initialize logger:", err)
	}
	defer logger.Sync()

	courseRepo := repository.NewGormCourseRepo(database.DB)
	userRepo := repository.NewGormUserRepo(database.DB)
	enrollmentRepo := repository.NewGormEnrollmentRepo(database.DB)
	progressRepo := repository.NewGormProgressRepo(database.DB)

	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	verifier := services.NewSignatureVerifier(cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)
	mailer := services.NewSMTPMailer(cfg)

	var producer *kafka.PaymentEventProducer
	var events services.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer = kafka.NewPaymentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, logger)
		defer producer.Close()
		events = producer
	}

	orderSvc := services.NewOrderService(courseRepo, gateway, logger)
	enrollmentSvc := services.NewEnrollmentService(
		courseRepo, userRepo, enrollmentRepo, progressRepo, mailer, events, logger,
	)

	pc := &controllers.PaymentController{
		Orders:      orderSvc,
		Enrollments: enrollmentSvc,
		Verifier:    verifier,
		Users:       userRepo,
		Mailer:      mailer,
		Events:      events,
		Logger:      logger,
	}
	cc := &controllers.CourseController{
		Courses: courseRepo,
		Logger:  logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	routes.Register(r, pc, cc, cfg.JWTSecret)

	logger.Info("LearnSphere backend running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[LearnSphere] ❌ Server failed:", err)
	}
}
