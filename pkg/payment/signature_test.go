package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureDeterministic(t *testing.T) {
	first := Signature("secret", "order_1", "pay_1")
	second := Signature("secret", "order_1", "pay_1")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
	assert.Equal(t, strings.ToLower(first), first)
}

func TestSignatureTamperSensitivity(t *testing.T) {
	base := Signature("secret", "order_1", "pay_1")
	tests := []struct {
		name                       string
		secret, orderID, paymentID string
	}{
		{"changed order id", "secret", "order_2", "pay_1"},
		{"changed payment id", "secret", "order_1", "pay_2"},
		{"changed secret", "secre7", "order_1", "pay_1"},
		{"swapped components", "secret", "pay_1", "order_1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, Signature(tt.secret, tt.orderID, tt.paymentID))
		})
	}
}

func TestVerifySignature(t *testing.T) {
	valid := Signature("secret", "order_1", "pay_1")
	require.True(t, VerifySignature("secret", "order_1", "pay_1", valid))

	tests := []struct {
		name                          string
		orderID, paymentID, signature string
	}{
		{"forged signature", "order_1", "pay_1", "deadbeef"},
		{"signature for other order", "order_2", "pay_1", valid},
		{"missing order id", "", "pay_1", valid},
		{"missing payment id", "order_1", "", valid},
		{"missing signature", "order_1", "pay_1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifySignature("secret", tt.orderID, tt.paymentID, tt.signature))
		})
	}
}
