package identity

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier checks a bearer credential and returns the subject it belongs to.
type Verifier interface {
	Verify(ctx context.Context, token string) (subject string, err error)
}

// FirebaseVerifier validates Firebase ID tokens.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a verifier. Returns nil if Firebase is not
// configured; callers treat a nil verifier as identity checks disabled.
func NewFirebaseVerifier(serviceAccountPath string) *FirebaseVerifier {
	if serviceAccountPath == "" {
		return nil
	}
	ctx := context.Background()
	opt := option.WithCredentialsFile(serviceAccountPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("[Identity] Failed to init Firebase app: %v", err)
		return nil
	}
	client, err := app.Auth(ctx)
	if err != nil {
		log.Printf("[Identity] Failed to get Auth client: %v", err)
		return nil
	}
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	return decoded.UID, nil
}
