package services

import "fmt"

// CourseEnrollmentEmailBody renders the enrollment-confirmation email.
func CourseEnrollmentEmailBody(courseName, fullName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">Course Registration Confirmation</h2>
  <p>Dear %s,</p>
  <p>You have successfully registered for the course <b>%s</b>.</p>
  <p>Head over to your dashboard to start learning. Your course progress
  tracker has been set up and is waiting for you.</p>
  <p style="margin-top: 24px;">Happy learning,<br/>The LearnSphere Team</p>
</body>
</html>`, fullName, courseName)
}

// PaymentSuccessEmailBody renders the payment receipt email. amount is in
// major currency units.
func PaymentSuccessEmailBody(fullName string, amount float64, orderID, paymentID string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">Payment Received</h2>
  <p>Dear %s,</p>
  <p>We have received your payment of <b>&#8377;%.2f</b>.</p>
  <p>Order ID: <b>%s</b><br/>Payment ID: <b>%s</b></p>
  <p>Keep this email for your records.</p>
  <p style="margin-top: 24px;">Thank you,<br/>The LearnSphere Team</p>
</body>
</html>`, fullName, amount, orderID, paymentID)
}
