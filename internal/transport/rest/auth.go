package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/coursereg-backend/internal/auth"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
	authsvc "github.com/heartmarshall/coursereg-backend/internal/service/auth"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

type authService interface {
	RequestCode(ctx context.Context, input authsvc.RequestCodeInput) (*authsvc.CodeRequestResult, error)
	VerifyCode(ctx context.Context, input authsvc.VerifyCodeInput) (*authsvc.SessionResult, error)
	AdminLogin(ctx context.Context, input authsvc.AdminLoginInput) (*authsvc.AdminSession, error)
}

// AuthHandler serves the employee OTP login and the admin login endpoints.
type AuthHandler struct {
	svc          authService
	cookieSecure bool
	log          *slog.Logger
}

// NewAuthHandler creates an AuthHandler. cookieSecure marks session cookies
// Secure; enable it whenever the portal is served over HTTPS.
func NewAuthHandler(svc authService, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookieSecure: cookieSecure, log: logger.With("handler", "auth")}
}

type requestOTPRequest struct {
	EmployeeID string `json:"employeeId"`
}

type requestOTPResponse struct {
	Success     bool   `json:"success"`
	MaskedEmail string `json:"maskedEmail"`
	EmployeeID  string `json:"employeeId"`
	Message     string `json:"message"`
}

type verifyOTPRequest struct {
	EmployeeID string `json:"employeeId"`
	OTP        string `json:"otp"`
}

type verifyOTPResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      ctxutil.Identity `json:"user"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RequestOTP handles POST /api/auth/request-otp.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req requestOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.RequestCode(r.Context(), authsvc.RequestCodeInput{EmployeeID: req.EmployeeID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestOTPResponse{
		Success:     true,
		MaskedEmail: result.MaskedEmail,
		EmployeeID:  result.EmployeeID,
		Message:     "OTP sent to " + result.MaskedEmail,
	})
}

// VerifyOTP handles POST /api/auth/verify-otp. A successful verification
// sets the employee session cookie.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.VerifyCode(r.Context(), authsvc.VerifyCodeInput{
		EmployeeID: req.EmployeeID,
		Code:       req.OTP,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setCookie(w, auth.SessionCookie, session.Token, session.ExpiresAt)
	writeJSON(w, http.StatusOK, verifyOTPResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      session.Identity,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, auth.SessionCookie)
	writeJSON(w, http.StatusOK, okResponse)
}

// Session handles GET /api/auth/session. Requires EmployeeAuth.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": identity})
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.AdminLogin(r.Context(), authsvc.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	h.setCookie(w, auth.AdminCookie, session.Token, session.ExpiresAt)
	writeJSON(w, http.StatusOK, okResponse)
}

// AdminLogout handles DELETE /api/admin/login.
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, auth.AdminCookie)
	writeJSON(w, http.StatusOK, okResponse)
}

// CheckAuth handles GET /api/admin/check-auth. Requires AdminAuth.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "authenticated": true})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
