package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/spreadsheet"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/internal/service/registration"
)

type registrationService interface {
	Get(ctx context.Context, draftID uuid.UUID) (*domain.Registration, error)
	Save(ctx context.Context, input registration.SaveInput) (*domain.Registration, error)
}

type registrationAdminService interface {
	List(ctx context.Context, f domain.RegistrationFilter) ([]domain.Registration, error)
	Delete(ctx context.Context, draftID uuid.UUID, userID string) error
	DeleteEntry(ctx context.Context, input registration.DeleteEntryInput) (*domain.Registration, error)
	ExportSubmitted(ctx context.Context, draftID uuid.UUID, userID string) (*bytes.Buffer, error)
}

// RegistrationHandler serves an employee's own document in one registration
// store. The same handler backs /api/registrations and /api/user_drafts;
// responseKey names the document in GET responses.
type RegistrationHandler struct {
	svc         registrationService
	responseKey string
	log         *slog.Logger
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(svc registrationService, responseKey string, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		svc:         svc,
		responseKey: responseKey,
		log:         logger.With("handler", responseKey),
	}
}

type saveRegistrationRequest struct {
	DraftID string          `json:"draftId"`
	Entries json.RawMessage `json:"entries"`
	Status  string          `json:"status"`
	Merge   bool            `json:"merge"`
}

// Get handles GET ?draftId= for the calling employee. A missing document is
// reported as null.
func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reg, err := h.svc.Get(r.Context(), draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{h.responseKey: toRegistrationResponse(reg)})
}

// Save handles POST with {draftId, entries, status?, merge?}.
func (h *RegistrationHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draftID, err := parseUUID("draftId", req.DraftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reg, err := h.svc.Save(r.Context(), registration.SaveInput{
		DraftID: draftID,
		Entries: req.Entries,
		Status:  domain.RegistrationStatus(req.Status),
		Merge:   req.Merge,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, h.responseKey: toRegistrationResponse(reg)})
}

// RegistrationAdminHandler serves the admin view over submitted registrations.
type RegistrationAdminHandler struct {
	svc registrationAdminService
	now func() time.Time
	log *slog.Logger
}

// NewRegistrationAdminHandler creates a RegistrationAdminHandler.
func NewRegistrationAdminHandler(svc registrationAdminService, logger *slog.Logger) *RegistrationAdminHandler {
	return &RegistrationAdminHandler{
		svc: svc,
		now: time.Now,
		log: logger.With("handler", "registration_admin"),
	}
}

type downloadRequest struct {
	DraftID string `json:"draftId"`
	UserID  string `json:"userId"`
}

// List handles GET /api/admin/registrations?draftId=&userId=&status=.
func (h *RegistrationAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filter := domain.RegistrationFilter{
		DraftID: draftID,
		UserID:  r.URL.Query().Get("userId"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.RegistrationStatus(raw)
		filter.Status = &st
	}

	regs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]*registrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, toRegistrationResponse(&regs[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"registrations": out})
}

// Delete handles DELETE /api/admin/registrations?draftId=&userId=&entryIdx=.
// Without entryIdx the whole registration is removed.
func (h *RegistrationAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		handleError(h.log, w, r, domain.NewValidationError("userId", "required"))
		return
	}

	rawIdx := r.URL.Query().Get("entryIdx")
	if rawIdx == "" {
		if err := h.svc.Delete(r.Context(), draftID, userID); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, okResponse)
		return
	}

	idx, err := strconv.Atoi(rawIdx)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("entryIdx", "invalid entryIdx"))
		return
	}

	if _, err := h.svc.DeleteEntry(r.Context(), registration.DeleteEntryInput{
		DraftID:  draftID,
		UserID:   userID,
		EntryIdx: idx,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse)
}

// Download handles POST /api/admin/registrations/download with
// {draftId, userId?} and streams the submitted registrations as xlsx.
func (h *RegistrationAdminHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draftID, err := parseUUID("draftId", req.DraftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	buf, err := h.svc.ExportSubmitted(r.Context(), draftID, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := fmt.Sprintf("registrations_%s.xlsx", h.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", spreadsheet.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}
