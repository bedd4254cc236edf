package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const adminRole = "admin"

// AdminCredentials are the single configured admin login.
type AdminCredentials struct {
	Username string
	Password string
}

// Match compares the given login against the configured one in constant time.
// An unconfigured username never matches.
func (c AdminCredentials) Match(username, password string) bool {
	if c.Username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// AdminTokens signs and verifies admin session tokens of the form
// base64url("<json payload>.<hex hmac-sha256 of payload>").
type AdminTokens struct {
	secret []byte
	ttl    time.Duration
}

type adminPayload struct {
	Role string `json:"role"`
	IAT  int64  `json:"iat"`
}

// NewAdminTokens creates an admin token signer. A ttl <= 0 disables the age check.
func NewAdminTokens(secret string, ttl time.Duration) *AdminTokens {
	return &AdminTokens{secret: []byte(secret), ttl: ttl}
}

// TTL returns the admin session lifetime.
func (a *AdminTokens) TTL() time.Duration { return a.ttl }

// Issue creates a token issued at now.
func (a *AdminTokens) Issue(now time.Time) (string, error) {
	payload, err := json.Marshal(adminPayload{Role: adminRole, IAT: now.UnixMilli()})
	if err != nil {
		return "", fmt.Errorf("marshal admin payload: %w", err)
	}
	raw := string(payload) + "." + a.sign(payload)
	return base64.RawURLEncoding.EncodeToString([]byte(raw)), nil
}

// Verify checks the token signature, role and age.
func (a *AdminTokens) Verify(token string, now time.Time) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	raw := string(decoded)
	dot := strings.LastIndex(raw, ".")
	if dot <= 0 {
		return fmt.Errorf("malformed token")
	}
	payload, sig := []byte(raw[:dot]), raw[dot+1:]

	if subtle.ConstantTimeCompare([]byte(sig), []byte(a.sign(payload))) != 1 {
		return fmt.Errorf("bad signature")
	}

	var p adminPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("unmarshal admin payload: %w", err)
	}
	if p.Role != adminRole {
		return fmt.Errorf("unexpected role %q", p.Role)
	}
	if a.ttl > 0 && now.Sub(time.UnixMilli(p.IAT)) > a.ttl {
		return fmt.Errorf("token expired")
	}

	return nil
}

func (a *AdminTokens) sign(payload []byte) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
