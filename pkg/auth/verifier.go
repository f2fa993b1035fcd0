package auth

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	apperrors "novena-backend/pkg/errors"
)

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// LocalVerifier validates tokens locally against the project JWT secret.
type LocalVerifier struct {
	validator *JWTValidator
}

// NewLocalVerifier creates a verifier over the project JWT secret.
func NewLocalVerifier(secret string) (*LocalVerifier, error) {
	validator, err := NewJWTValidator(secret)
	if err != nil {
		return nil, err
	}
	return &LocalVerifier{validator: validator}, nil
}

// Verify implements TokenVerifier. Rejections are classified as
// unauthorized so the HTTP layer can pass the reason through.
func (v *LocalVerifier) Verify(_ context.Context, token string) (string, error) {
	claims, err := v.validator.Validate(token)
	if err != nil {
		return "", apperrors.NewUnauthorizedError(err.Error())
	}
	return claims.Subject, nil
}

// RemoteVerifier asks the Supabase auth API whether a token belongs to a
// live user. Used when the JWT secret is not configured locally.
type RemoteVerifier struct {
	client *supabase.Client
}

// NewRemoteVerifier creates a verifier that calls the Supabase auth API.
func NewRemoteVerifier(url, anonKey string) (*RemoteVerifier, error) {
	client, err := supabase.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &RemoteVerifier{client: client}, nil
}

// Verify implements TokenVerifier. The GetUser call, chained with WithToken,
// performs the HTTP request itself; context is not plumbed through the
// underlying client.
func (v *RemoteVerifier) Verify(_ context.Context, token string) (string, error) {
	user, err := v.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("token rejected: %w", err)
	}
	return user.ID.String(), nil
}
