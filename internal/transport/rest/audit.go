package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type auditLister interface {
	List(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.AuditRecord, error)
}

// AuditHandler serves the admin audit trail.
type AuditHandler struct {
	audit auditLister
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditLister, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

// List handles GET /api/admin/audit?entityType=&entityId=&limit=&offset=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entityType := domain.EntityType(q.Get("entityType"))
	if entityType != "" && !entityType.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("entityType", "unknown entity type"))
		return
	}

	limit, err := queryInt(r, "limit", defaultAuditLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if limit == 0 {
		limit = defaultAuditLimit
	}
	limit = min(limit, maxAuditLimit)
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.audit.List(r.Context(), entityType, q.Get("entityId"), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]auditResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, auditResponse{
			ID:         rec.ID.String(),
			Actor:      rec.Actor,
			EntityType: rec.EntityType.String(),
			EntityID:   rec.EntityID,
			Action:     rec.Action.String(),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": out})
}
