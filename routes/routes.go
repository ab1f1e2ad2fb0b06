package routes

import (
	"github.com/Adarshjain3011/LearnSphere/controllers"
	"github.com/Adarshjain3011/LearnSphere/middleware"
	"github.com/Adarshjain3011/LearnSphere/models"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, pc *controllers.PaymentController, cc *controllers.CourseController, jwtSecret string) {
	payment := r.Group("/payment")

	// Webhook is signature-authenticated, not token-authenticated.
	payment.POST("/razorpay-webhook", pc.RazorpayWebhook)

	student := payment.Group("")
	student.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireRole(models.AccountTypeStudent),
		middleware.RateLimitMiddleware(),
	)
	student.POST("/capturePayment", pc.CapturePayment)
	student.POST("/verifyPayment", pc.VerifyPayment)
	student.POST("/sendPaymentSuccessEmail", pc.SendPaymentSuccessEmail)

	courses := r.Group("/courses")
	courses.GET("", cc.ListCourses)
	courses.GET("/:id", cc.GetCourse)
	courses.POST("",
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireRole(models.AccountTypeInstructor),
		cc.CreateCourse,
	)
}
