package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	OTP       OTPConfig       `yaml:"otp"`
	Mail      MailConfig      `yaml:"mail"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxUploadBytes caps catalog upload bodies.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds employee session and admin credential settings.
type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET" env-required:"true"`
	SessionIssuer string        `yaml:"session_issuer" env:"AUTH_SESSION_ISSUER" env-default:"coursereg"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"    env-default:"24h"`
	CookieSecure  bool          `yaml:"cookie_secure"  env:"AUTH_COOKIE_SECURE"  env-default:"false"`

	AdminUsername string        `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPassword string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	AdminSecret   string        `yaml:"admin_secret"   env:"ADMIN_SECRET"   env-required:"true"`
	AdminTTL      time.Duration `yaml:"admin_ttl"      env:"ADMIN_SESSION_TTL" env-default:"8h"`
}

// AdminEnabled reports whether admin login is possible at all.
func (c AuthConfig) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// OTPConfig holds one-time code settings.
type OTPConfig struct {
	ExpiryMinutes   int    `yaml:"expiry_minutes"   env:"OTP_EXPIRY_MINUTES"   env-default:"5"`
	BcryptCost      int    `yaml:"bcrypt_cost"      env:"OTP_BCRYPT_COST"      env-default:"10"`
	CleanupSchedule string `yaml:"cleanup_schedule" env:"OTP_CLEANUP_SCHEDULE" env-default:"@every 1m"`
}

// TTL returns the code lifetime.
func (c OTPConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// MailConfig holds SMTP settings for OTP delivery.
type MailConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"MAIL_ENABLED"  env-default:"false"`
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	From     string `yaml:"from"     env:"SMTP_FROM"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for unauthenticated endpoints.
type RateLimitConfig struct {
	OTPPerMinute    int           `yaml:"otp_per_minute"    env:"RATE_LIMIT_OTP_PER_MINUTE"   env-default:"5"`
	LoginPerMinute  int           `yaml:"login_per_minute"  env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Origins splits AllowedOrigins into trimmed values.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
