package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"glassboard/internal/model"
)

// Session is the opaque current-user provider. It carries a backend-issued
// bearer token and the identity claims baked into it. The signature is the
// backend's to verify; the client only reads claims to know who it is and
// whether the token is already past its expiry.
type Session struct {
	token     string
	user      model.User
	expiresAt time.Time
}

// FromToken builds a session from a backend-issued JWT without verifying the
// signature. The user_id claim is required; name and email are optional.
func FromToken(tokenStr string) (*Session, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return nil, errors.New("invalid claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	s := &Session{
		token: tokenStr,
		user:  model.User{ID: userID},
	}
	if name, ok := claims["name"].(string); ok {
		s.user.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		s.user.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.expiresAt = exp.Time
	}
	return s, nil
}

// Anonymous returns a tokenless session for unauthenticated use; the engine
// still works against the local tiers.
func Anonymous() *Session {
	return &Session{user: model.User{ID: "anonymous", Name: "Anonymous"}}
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) User() model.User {
	return s.user
}

// Expired reports whether the token's exp claim has passed. Tokens without
// an exp claim never expire client-side.
func (s *Session) Expired() bool {
	if s.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.expiresAt)
}
