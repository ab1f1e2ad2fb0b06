package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the HMAC-SHA256 signatures Razorpay attaches to
// client verification payloads and webhook deliveries. The two paths use
// different secrets and different message constructions; mixing them up
// makes every check fail, which is why both secrets are injected here
// instead of read from the environment at call time.
type SignatureVerifier struct {
	apiSecret     string
	webhookSecret string
}

func NewSignatureVerifier(apiSecret, webhookSecret string) *SignatureVerifier {
	return &SignatureVerifier{apiSecret: apiSecret, webhookSecret: webhookSecret}
}

// VerifyPaymentSignature checks the signature the client submits after
// checkout. The signed message is "<orderID>|<paymentID>" under the API
// secret.
func (v *SignatureVerifier) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	if v.apiSecret == "" || orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return verifyHMAC([]byte(v.apiSecret), []byte(orderID+"|"+paymentID), signature)
}

// VerifyWebhookSignature checks the x-razorpay-signature header against the
// raw request body. The body must be the exact bytes received on the wire;
// re-serialized JSON will not match.
func (v *SignatureVerifier) VerifyWebhookSignature(body []byte, signature string) bool {
	if v.webhookSecret == "" || len(body) == 0 || signature == "" {
		return false
	}
	return verifyHMAC([]byte(v.webhookSecret), body, signature)
}

func verifyHMAC(secret, message []byte, provided string) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))
	// hmac.Equal is constant time.
	return hmac.Equal([]byte(expected), []byte(provided))
}
