package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const minSecretLen = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < minSecretLen {
		return fmt.Errorf("auth.session_secret must be at least %d characters (got %d)", minSecretLen, len(c.Auth.SessionSecret))
	}
	if len(c.Auth.AdminSecret) < minSecretLen {
		return fmt.Errorf("auth.admin_secret must be at least %d characters (got %d)", minSecretLen, len(c.Auth.AdminSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if err := c.OTP.validate(); err != nil {
		return fmt.Errorf("otp: %w", err)
	}
	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if c.RateLimit.OTPPerMinute <= 0 {
		return fmt.Errorf("rate_limit.otp_per_minute must be > 0 (got %d)", c.RateLimit.OTPPerMinute)
	}

	return nil
}

func (o *OTPConfig) validate() error {
	if o.ExpiryMinutes <= 0 {
		return fmt.Errorf("expiry_minutes must be > 0 (got %d)", o.ExpiryMinutes)
	}
	if o.BcryptCost < bcrypt.MinCost || o.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, o.BcryptCost)
	}
	if o.CleanupSchedule == "" {
		return fmt.Errorf("cleanup_schedule is required")
	}
	return nil
}

func (m *MailConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if m.Host == "" {
		return fmt.Errorf("host is required when mail is enabled")
	}
	if m.Port <= 0 {
		return fmt.Errorf("port must be > 0 (got %d)", m.Port)
	}
	if m.From == "" {
		return fmt.Errorf("from is required when mail is enabled")
	}
	return nil
}
