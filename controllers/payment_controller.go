package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Adarshjain3011/LearnSphere/middleware"
	"github.com/Adarshjain3011/LearnSphere/models"
	"github.com/Adarshjain3011/LearnSphere/repository"
	"github.com/Adarshjain3011/LearnSphere/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const webhookSignatureHeader = "x-razorpay-signature"

// PaymentController owns the payment capture → verification → enrollment
// flow. Both the synchronous verification endpoint and the asynchronous
// webhook funnel into the enrollment service after signature validation.
type PaymentController struct {
	Orders      services.OrderService
	Enrollments services.EnrollmentService
	Verifier    *services.SignatureVerifier
	Users       repository.UserRepository
	Mailer      services.Mailer
	Events      services.EventPublisher
	Logger      *zap.Logger
}

// CapturePayment computes the order total and creates the gateway order.
func (pc *PaymentController) CapturePayment(c *gin.Context) {
	var req struct {
		Courses []string `json:"courses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide course IDs."})
		return
	}

	userID := middleware.GetUserID(c)

	order, svcErr := pc.Orders.CreateOrder(c.Request.Context(), req.Courses, userID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// VerifyPayment checks the client-submitted gateway signature and enrolls
// the caller on success.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string   `json:"razorpay_order_id"`
		RazorpayPaymentID string   `json:"razorpay_payment_id"`
		RazorpaySignature string   `json:"razorpay_signature"`
		Courses           []string `json:"courses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required payment details."})
		return
	}

	userID := middleware.GetUserID(c)
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" ||
		len(req.Courses) == 0 || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required payment details."})
		return
	}

	if !pc.Verifier.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		pc.Logger.Warn("Payment signature verification failed",
			zap.String("order_id", req.RazorpayOrderID),
			zap.String("user_id", userID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed."})
		return
	}

	pc.publishVerified(req.RazorpayOrderID, req.RazorpayPaymentID, userID)

	report := pc.Enrollments.Enroll(c.Request.Context(), req.Courses, userID)
	pc.logPartialFailures("verifyPayment", report)

	// Per-course failures do not fail the verification response; the
	// payment itself is confirmed at this point.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified and enrollment processed.",
		"data":    report,
	})
}

// RazorpayWebhook handles asynchronous gateway events. The body is read
// raw before any JSON decoding so the exact byte sequence is available for
// signature computation.
func (pc *PaymentController) RazorpayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unable to read request body."})
		return
	}

	signature := c.GetHeader(webhookSignatureHeader)
	if !pc.Verifier.VerifyWebhookSignature(body, signature) {
		pc.Logger.Warn("Webhook signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid webhook signature."})
		return
	}

	// From here on the gateway always gets a 200: a non-2xx makes it
	// retry, and retrying cannot fix a malformed-but-authentic event.
	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		pc.Logger.Warn("Webhook body is not valid JSON", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if !event.TriggersEnrollment() {
		pc.Logger.Info("Ignoring webhook event", zap.String("event", event.Event))
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	courseIDs, userID, ok := event.EnrollmentNotes()
	if !ok {
		pc.Logger.Warn("Webhook event missing usable notes", zap.String("event", event.Event))
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	report := pc.Enrollments.Enroll(c.Request.Context(), courseIDs, userID)
	pc.logPartialFailures("webhook", report)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendPaymentSuccessEmail sends the payment receipt mail on request from
// the client after checkout.
func (pc *PaymentController) SendPaymentSuccessEmail(c *gin.Context) {
	var req struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Amount    int64  `json:"amount"` // minor units
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.PaymentID == "" || req.Amount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incomplete payment details."})
		return
	}

	userID := middleware.GetUserID(c)
	user, err := pc.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		pc.Logger.Error("User lookup failed for payment email", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		return
	}

	body := services.PaymentSuccessEmailBody(user.FullName(), float64(req.Amount)/100, req.OrderID, req.PaymentID)
	if err := pc.Mailer.Send(c.Request.Context(), user.Email, "Payment Successful", body); err != nil {
		pc.Logger.Error("Failed to send payment success email", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Email not sent."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment success email sent."})
}

func (pc *PaymentController) publishVerified(orderID, paymentID, userID string) {
	if pc.Events == nil {
		return
	}
	event := models.PaymentEvent{
		Type:      models.EventTypePaymentVerified,
		UserID:    userID,
		OrderID:   orderID,
		PaymentID: paymentID,
		Timestamp: time.Now().UTC(),
	}
	if err := pc.Events.SendPaymentEvent(event); err != nil {
		pc.Logger.Error("Failed to publish payment event",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

func (pc *PaymentController) logPartialFailures(source string, report *models.EnrollmentReport) {
	for _, o := range report.Outcomes {
		if o.Error != "" {
			pc.Logger.Error("Enrollment failed for course",
				zap.String("source", source),
				zap.String("course_id", o.CourseID),
				zap.String("user_id", report.UserID),
				zap.String("reason", o.Error),
			)
		}
	}
}
