package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/internal/service/draft"
)

type draftService interface {
	List(ctx context.Context) ([]domain.Draft, error)
	ListOpen(ctx context.Context) ([]domain.Draft, error)
	Create(ctx context.Context, input draft.CreateDraftInput) (*domain.Draft, error)
	Update(ctx context.Context, input draft.UpdateDraftInput) (*domain.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DraftHandler serves the public draft listing and admin draft CRUD.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type createDraftRequest struct {
	Name      string `json:"name"`
	YearStart int    `json:"yearStart"`
	YearEnd   int    `json:"yearEnd"`
}

type updateDraftRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Status    *string `json:"status"`
	YearStart *int    `json:"yearStart"`
	YearEnd   *int    `json:"yearEnd"`
}

type draftMutationResponse struct {
	Success bool          `json:"success"`
	Draft   draftResponse `json:"draft"`
}

// ListOpen handles GET /api/drafts.
func (h *DraftHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.ListOpen(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"drafts": toDraftResponses(drafts)})
}

// List handles GET /api/admin/drafts.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"drafts": toDraftResponses(drafts)})
}

// Create handles POST /api/admin/drafts.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), draft.CreateDraftInput{
		Name:      req.Name,
		YearStart: req.YearStart,
		YearEnd:   req.YearEnd,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, draftMutationResponse{Success: true, Draft: toDraftResponse(d)})
}

// Update handles PUT /api/admin/drafts.
func (h *DraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := parseUUID("id", req.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := draft.UpdateDraftInput{
		ID:        id,
		Name:      req.Name,
		YearStart: req.YearStart,
		YearEnd:   req.YearEnd,
	}
	if req.Status != nil {
		st := domain.DraftStatus(*req.Status)
		input.Status = &st
	}

	d, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draftMutationResponse{Success: true, Draft: toDraftResponse(d)})
}

// Delete handles DELETE /api/admin/drafts?id=. Courses and registrations of
// the draft go with it.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse)
}
