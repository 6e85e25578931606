package service

import (
	"context"
)

// GoogleUserInfo is the subset of the Google ID token payload the
// marketplace cares about.
type GoogleUserInfo struct {
	Subject string // Google's stable user identifier ('sub' claim).
	Email   string
	Name    string
	Picture string
}

// OAuthService verifies Google Sign-In ID tokens presented by the client.
// Only ID-token verification is needed; no server-side OAuth flow exists.
type OAuthService interface {
	// VerifyIDToken validates the token signature and audience and
	// extracts the user info.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error)
}
