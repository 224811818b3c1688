package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Razorpay  RazorpayConfig
	Firestore FirestoreConfig
	Firebase  FirebaseConfig
	Admin     AdminConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Payment   PaymentConfig
	Database  DatabaseConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RazorpayConfig holds the gateway credentials. KeySecret doubles as the
// HMAC key for payment-signature verification and must never reach a client.
type RazorpayConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
}

// FirebaseConfig configures ID-token verification for confirmations.
// Optional: with no service account path, bearer tokens are not verified.
type FirebaseConfig struct {
	ServiceAccountPath string
}

type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash; empty disables admin login
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// PaymentConfig: every amount in this service is an integer in the smallest
// currency unit (paise). No conversion happens at any boundary.
type PaymentConfig struct {
	Currency      string
	VerifyAmounts bool // reconcile claimed totals against the gateway order
}

type DatabaseConfig struct {
	Path string // sqlite file for the audit trail
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8088"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Razorpay: RazorpayConfig{
			BaseURL:   getenv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			Collection:      getenv("FIRESTORE_ORDERS_COLLECTION", "orders"),
		},
		Firebase: FirebaseConfig{
			ServiceAccountPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
		},
		Admin: AdminConfig{
			Email:        getenv("ADMIN_EMAIL", "admin@dukaan.local"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			AccessSecret: getenv("JWT_ACCESS_SECRET", "change-me-in-production"),
			AccessExpiry: getdur("JWT_ACCESS_EXPIRY", 12*time.Hour),
			Issuer:       "dukaan",
		},
		CORS: CORSConfig{
			AllowedOrigins: getlist("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Payment: PaymentConfig{
			Currency:      getenv("PAYMENT_CURRENCY", "INR"),
			VerifyAmounts: getbool("PAYMENT_VERIFY_AMOUNTS", true),
		},
		Database: DatabaseConfig{
			Path: getenv("AUDIT_DB_PATH", "dukaan_audit.db"),
		},
	}
}

// Validate reports every missing required setting at once. A failed
// validation is fatal at startup, never a per-request error.
func (c *Config) Validate() error {
	var missing []string
	if c.Razorpay.KeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if c.Razorpay.KeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if c.Firestore.ProjectID == "" {
		missing = append(missing, "FIRESTORE_PROJECT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Server.Env == "production" && c.JWT.AccessSecret == "change-me-in-production" {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set in production")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getlist(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
