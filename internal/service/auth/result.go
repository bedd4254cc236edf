package auth

import (
	"time"

	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// CodeRequestResult is returned by RequestCode.
type CodeRequestResult struct {
	MaskedEmail string
	// EmployeeID is the canonical ID the code was issued under.
	EmployeeID string
}

// SessionResult is returned by VerifyCode.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  ctxutil.Identity
}

// AdminSession is returned by AdminLogin.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}
