// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"google.golang.org/api/idtoken"

	"vitrina/config"
	"vitrina/internal/domain/service"
	"vitrina/internal/errors"
)

// googleVerifier validates Google Sign-In ID tokens against the configured
// OAuth client ID. Only the ID-token flow is supported; the client obtains
// the token, the backend verifies it.
type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier is the constructor for googleVerifier.
func NewGoogleVerifier(cfg *config.Config) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &googleVerifier{clientID: cfg.GoogleOAuth.ClientID}, nil
}

// VerifyIDToken validates the token signature and audience and extracts the user info.
func (v *googleVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*service.GoogleUserInfo, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate google id token")
	}

	info := &service.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}

	if info.Email == "" {
		return nil, errors.New("google id token is missing the email claim")
	}

	return info, nil
}
