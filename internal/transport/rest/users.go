package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/internal/service/user"
)

type userService interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	Upsert(ctx context.Context, input user.UpsertInput) (*domain.Employee, error)
	Update(ctx context.Context, input user.UpdateInput) (*domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

// UserHandler serves admin management of employees.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userMutationResponse struct {
	Success bool             `json:"success"`
	User    employeeResponse `json:"user"`
}

// List handles GET /api/admin/users?department=&search=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.List(r.Context(), domain.EmployeeFilter{
		Department: r.URL.Query().Get("department"),
		Search:     r.URL.Query().Get("search"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeResponse(&employees[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

// Upsert handles POST /api/admin/users.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input user.UpsertInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	emp, err := h.svc.Upsert(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userMutationResponse{Success: true, User: toEmployeeResponse(emp)})
}

// Update handles PUT /api/admin/users. Name, department and programme
// changes are propagated to the employee's registrations.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input user.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	emp, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userMutationResponse{Success: true, User: toEmployeeResponse(emp)})
}

// Delete handles DELETE /api/admin/users?employeeId=.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.URL.Query().Get("employeeId")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}
