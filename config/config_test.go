package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Load()
	cfg.Razorpay.KeyID = "rzp_test_key"
	cfg.Razorpay.KeySecret = "rzp_test_secret"
	cfg.Firestore.ProjectID = "demo-project"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"missing key id", func(c *Config) { c.Razorpay.KeyID = "" }, "RAZORPAY_KEY_ID"},
		{"missing key secret", func(c *Config) { c.Razorpay.KeySecret = "" }, "RAZORPAY_KEY_SECRET"},
		{"missing project id", func(c *Config) { c.Firestore.ProjectID = "" }, "FIRESTORE_PROJECT_ID"},
		{"default jwt secret in production", func(c *Config) { c.Server.Env = "production" }, "JWT_ACCESS_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("all missing settings reported together", func(t *testing.T) {
		cfg := validConfig()
		cfg.Razorpay.KeyID = ""
		cfg.Firestore.ProjectID = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RAZORPAY_KEY_ID")
		assert.Contains(t, err.Error(), "FIRESTORE_PROJECT_ID")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("PAYMENT_VERIFY_AMOUNTS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.False(t, cfg.Payment.VerifyAmounts)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "INR", cfg.Payment.Currency)
	assert.True(t, cfg.Payment.VerifyAmounts)
	assert.Equal(t, "orders", cfg.Firestore.Collection)
	assert.Equal(t, "https://api.razorpay.com", cfg.Razorpay.BaseURL)
}
