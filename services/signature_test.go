package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signHex(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature_Valid(t *testing.T) {
	v := NewSignatureVerifier("api-secret", "webhook-secret")
	sig := signHex("api-secret", "order_123|pay_456")

	assert.True(t, v.VerifyPaymentSignature("order_123", "pay_456", sig))
}

func TestVerifyPaymentSignature_AnyMutationFlipsResult(t *testing.T) {
	v := NewSignatureVerifier("api-secret", "webhook-secret")
	sig := signHex("api-secret", "order_123|pay_456")

	// Tampered order id
	assert.False(t, v.VerifyPaymentSignature("order_124", "pay_456", sig))
	// Tampered payment id
	assert.False(t, v.VerifyPaymentSignature("order_123", "pay_457", sig))
	// Tampered signature
	tampered := "0" + sig[1:]
	if tampered == sig {
		tampered = "1" + sig[1:]
	}
	assert.False(t, v.VerifyPaymentSignature("order_123", "pay_456", tampered))
	// Signed with the wrong secret
	wrongSecret := signHex("webhook-secret", "order_123|pay_456")
	assert.False(t, v.VerifyPaymentSignature("order_123", "pay_456", wrongSecret))
}

func TestVerifyPaymentSignature_MalformedInputs(t *testing.T) {
	v := NewSignatureVerifier("api-secret", "webhook-secret")

	assert.False(t, v.VerifyPaymentSignature("", "pay_456", "abc"))
	assert.False(t, v.VerifyPaymentSignature("order_123", "", "abc"))
	assert.False(t, v.VerifyPaymentSignature("order_123", "pay_456", ""))
	assert.False(t, v.VerifyPaymentSignature("order_123", "pay_456", "not-hex-at-all"))

	empty := NewSignatureVerifier("", "")
	assert.False(t, empty.VerifyPaymentSignature("order_123", "pay_456", "abc"))
}

func TestVerifyWebhookSignature(t *testing.T) {
	v := NewSignatureVerifier("api-secret", "webhook-secret")
	body := []byte(`{"event":"payment.captured","payload":{}}`)
	sig := signHex("webhook-secret", string(body))

	assert.True(t, v.VerifyWebhookSignature(body, sig))

	// The webhook path uses the webhook secret, not the API secret.
	apiSig := signHex("api-secret", string(body))
	assert.False(t, v.VerifyWebhookSignature(body, apiSig))

	// A single changed byte in the body must fail.
	mutated := append([]byte(nil), body...)
	mutated[0] = '['
	assert.False(t, v.VerifyWebhookSignature(mutated, sig))

	assert.False(t, v.VerifyWebhookSignature(nil, sig))
	assert.False(t, v.VerifyWebhookSignature(body, ""))
}
