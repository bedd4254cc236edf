//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/coursereg-backend/internal/app"
	"github.com/heartmarshall/coursereg-backend/internal/config"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	adminUser     = "admin"
	adminPassword = "e2e-admin-password"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Pool   *pgxpool.Pool
	Mailer *captureSender
}

// captureSender records the last code sent to each employee instead of
// mailing it.
type captureSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *captureSender) SendCode(_ context.Context, m domain.OTPMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[m.EmployeeID] = m.Code
	return nil
}

func (s *captureSender) code(t *testing.T, employeeID string) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[employeeID]
	require.True(t, ok, "no code sent to %s", employeeID)
	return code
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		Auth: config.AuthConfig{
			SessionSecret: "e2e-session-secret-at-least-32-chars",
			SessionIssuer: "coursereg-e2e",
			SessionTTL:    time.Hour,
			AdminUsername: adminUser,
			AdminPassword: adminPassword,
			AdminSecret:   "e2e-admin-secret-at-least-32-chars!!",
			AdminTTL:      time.Hour,
		},
		OTP: config.OTPConfig{ExpiryMinutes: 5, BcryptCost: 4},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			OTPPerMinute:    1000,
			LoginPerMinute:  1000,
			CleanupInterval: time.Minute,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sender := &captureSender{codes: make(map[string]string)}

	srv := app.NewServer(testConfig(), pool, sender, logger)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return &testServer{URL: ts.URL, Pool: pool, Mailer: sender}
}

// client is one browser: it keeps its own cookies.
type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func (ts *testServer) newClient(t *testing.T) *client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: ts.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+path, r)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (c *client) upload(path, contentType string, body []byte) *http.Response {
	c.t.Helper()

	req, err := http.NewRequest(http.MethodPost, c.base+path, bytes.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// json sends a request, asserts the status and decodes the JSON body.
func (c *client) json(method, path string, body any, wantStatus int) map[string]any {
	c.t.Helper()

	resp := c.do(method, path, body)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	require.Equal(c.t, wantStatus, resp.StatusCode, "body: %s", raw)

	var out map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

// loginAdmin returns a client holding an admin session cookie.
func (ts *testServer) loginAdmin(t *testing.T) *client {
	t.Helper()
	c := ts.newClient(t)
	c.json(http.MethodPost, "/api/admin/login", map[string]string{
		"username": adminUser,
		"password": adminPassword,
	}, http.StatusOK)
	return c
}

// loginEmployee runs the OTP flow and returns a client holding the employee
// session cookie.
func (ts *testServer) loginEmployee(t *testing.T, employeeID string) *client {
	t.Helper()
	c := ts.newClient(t)
	c.json(http.MethodPost, "/api/auth/request-otp", map[string]string{"employeeId": employeeID}, http.StatusOK)
	c.json(http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"employeeId": employeeID,
		"otp":        ts.Mailer.code(t, employeeID),
	}, http.StatusOK)
	return c
}

// createDraft creates an open draft through the admin API and returns its id.
func createDraft(t *testing.T, admin *client, name string) string {
	t.Helper()
	out := admin.json(http.MethodPost, "/api/admin/drafts", map[string]any{
		"name":      name,
		"yearStart": 2024,
		"yearEnd":   2025,
	}, http.StatusCreated)
	draft, ok := out["draft"].(map[string]any)
	require.True(t, ok, "expected draft object")
	id, ok := draft["id"].(string)
	require.True(t, ok, "expected draft id")
	return id
}
