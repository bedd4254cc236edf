package domain

import "time"

// OTPRecord is the single live one-time code of an employee. Only the bcrypt
// hash of the code is ever stored.
type OTPRecord struct {
	EmployeeID string
	HashedOTP  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the code is past its expiry at now.
// A code is still valid at exactly ExpiresAt.
func (r *OTPRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// OTPMessage is a login code addressed to an employee.
type OTPMessage struct {
	To         string
	Name       string
	EmployeeID string
	Code       string
	TTL        time.Duration
}
