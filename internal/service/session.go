package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-wrench/models"
)

// SessionContext is the read-only outcome of a successful handshake. It is
// populated once, handed to every authenticated call, and never mutated: a
// new run requires a new handshake. Credentials are never written to disk.
type SessionContext struct {
	credential      models.SessionCredential
	userFingerprint string
	establishedAt   time.Time
	expiresAt       time.Time
}

// NewSessionContext freezes the credential into a read-only context. When
// the session token is a JWT its expiry claim is decoded without signature
// verification; the value is informational only, the server remains the
// authority on session validity.
//
// The handshake is the production caller; tests may inject a fake context
// directly.
func NewSessionContext(credential models.SessionCredential, userFingerprint string) *SessionContext {
	return &SessionContext{
		credential:      credential,
		userFingerprint: userFingerprint,
		establishedAt:   time.Now(),
		expiresAt:       introspectExpiry(credential.SessionToken),
	}
}

// Credential returns the session credential for attaching to requests.
func (s *SessionContext) Credential() models.SessionCredential {
	return s.credential
}

// UserFingerprint returns the fingerprint of the key the session was
// established with.
func (s *SessionContext) UserFingerprint() string {
	return s.userFingerprint
}

// EstablishedAt returns when the handshake completed.
func (s *SessionContext) EstablishedAt() time.Time {
	return s.establishedAt
}

// ExpiresAt returns the session expiry decoded from the token, or the zero
// time when the token carries no readable expiry.
func (s *SessionContext) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsAuthenticated reports whether the context holds a usable credential.
func (s *SessionContext) IsAuthenticated() bool {
	return s != nil && !s.credential.IsZero()
}

func introspectExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
