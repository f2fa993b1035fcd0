// Package supabase holds the clients for the two remote collaborators: the
// catalog endpoint and the LLM-backed intention matching endpoint. Every
// failure here is treated as transient unavailability: callers degrade to
// the next fallback tier and never surface these errors to users.
package supabase

import (
	"errors"
)

// ErrNoSession indicates there is no auth session to call the backend with.
// Treated as unavailability, not as an error to escalate.
var ErrNoSession = errors.New("no active session")

// SessionProvider supplies the bearer token for outbound backend calls.
type SessionProvider interface {
	Token() (string, error)
}

// ServiceSession is a fixed-key session, used when the service calls the
// backend on its own behalf.
type ServiceSession struct {
	key string
}

// NewServiceSession builds a session over a service role key. An empty key
// yields a provider that reports no session.
func NewServiceSession(key string) *ServiceSession {
	return &ServiceSession{key: key}
}

// Token implements SessionProvider.
func (s *ServiceSession) Token() (string, error) {
	if s.key == "" {
		return "", ErrNoSession
	}
	return s.key, nil
}
