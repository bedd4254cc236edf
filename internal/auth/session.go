package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// SessionManager issues and validates employee session tokens.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL returns the lifetime of issued tokens.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// sessionClaims carries the employee identity next to the registered claims.
// The subject is the canonical employee ID.
type sessionClaims struct {
	jwt.RegisteredClaims
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Programme  string `json:"programme,omitempty"`
}

// Issue creates a signed HS256 JWT for the given identity.
func (m *SessionManager) Issue(id ctxutil.Identity) (string, error) {
	if id.ID == "" {
		return "", fmt.Errorf("identity without id")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:       id.Name,
		Email:      id.Email,
		Department: id.Department,
		Programme:  id.Programme,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a session token and returns the identity it carries.
func (m *SessionManager) Parse(tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return ctxutil.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}
	if claims.Subject == "" {
		return ctxutil.Identity{}, fmt.Errorf("token without subject")
	}

	return ctxutil.Identity{
		ID:         claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Department: claims.Department,
		Programme:  claims.Programme,
	}, nil
}

// Cookie names carrying the employee and admin tokens.
const (
	SessionCookie = "employee_session"
	AdminCookie   = "admin_session"
)
