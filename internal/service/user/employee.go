package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/pkg/ctxutil"
)

// List returns employees matching the filter, ordered by employee id.
func (s *Service) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return employees, nil
}

// Get returns one employee by its stored id.
func (s *Service) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, domain.NewValidationError("employeeId", "required")
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return emp, nil
}

// Upsert creates the employee or overwrites an existing one. Identity
// changes on an existing employee reach every stored registration.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Employee, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prior, err := s.employees.GetByID(txCtx, input.EmployeeID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get employee: %w", err)
		}

		saved, err = s.employees.Upsert(txCtx, &domain.Employee{
			EmployeeID: input.EmployeeID,
			Name:       input.Name,
			Email:      input.Email,
			Department: input.Department,
			Programme:  input.Programme,
		})
		if err != nil {
			return fmt.Errorf("upsert employee: %w", err)
		}

		action := domain.AuditActionCreate
		changes := map[string]any{"name": saved.Name, "email": saved.Email}
		if prior != nil {
			action = domain.AuditActionUpdate
			changes = diffEmployee(prior, saved)

			touched, err := s.propagate(txCtx, saved.EmployeeID, identityDiff(prior, saved))
			if err != nil {
				return err
			}
			if touched > 0 {
				changes["propagated"] = touched
			}
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeEmployee,
			EntityID:   saved.EmployeeID,
			Action:     action,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "employee saved", slog.String("employee_id", saved.EmployeeID))

	return saved, nil
}

// Update applies a partial update. Name, department and programme changes
// are rewritten into the snapshots of every registration of the employee
// within the same transaction.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Employee, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prior, err := s.employees.GetByID(txCtx, input.EmployeeID)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}

		updated, err = s.employees.Update(txCtx, input.EmployeeID, input.patch())
		if err != nil {
			return fmt.Errorf("update employee: %w", err)
		}

		changes := diffEmployee(prior, updated)
		touched, err := s.propagate(txCtx, updated.EmployeeID, identityDiff(prior, updated))
		if err != nil {
			return err
		}
		if touched > 0 {
			changes["propagated"] = touched
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeEmployee,
			EntityID:   updated.EmployeeID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "employee updated", slog.String("employee_id", updated.EmployeeID))

	return updated, nil
}

// Delete removes the employee. Stored registrations keep their snapshot.
func (s *Service) Delete(ctx context.Context, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return domain.NewValidationError("employeeId", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.employees.Delete(txCtx, employeeID); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      ctxutil.ActorFromCtx(ctx),
			EntityType: domain.EntityTypeEmployee,
			EntityID:   employeeID,
			Action:     domain.AuditActionDelete,
		})
	})
	if err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "employee deleted", slog.String("employee_id", employeeID))

	return nil
}

func (s *Service) propagate(ctx context.Context, employeeID string, patch domain.IdentityPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	var total int64
	for _, store := range s.identities {
		n, err := store.UpdateIdentity(ctx, employeeID, patch)
		if err != nil {
			return 0, fmt.Errorf("propagate identity: %w", err)
		}
		total += n
	}
	return total, nil
}

// identityDiff returns the snapshot fields that differ between two
// versions of an employee.
func identityDiff(prior, next *domain.Employee) domain.IdentityPatch {
	var p domain.IdentityPatch
	if prior.Name != next.Name {
		p.UserName = &next.Name
	}
	if prior.Department != next.Department {
		p.Department = &next.Department
	}
	if prior.Programme != next.Programme {
		p.Programme = &next.Programme
	}
	return p
}

func diffEmployee(prior, next *domain.Employee) map[string]any {
	changes := make(map[string]any)
	field := func(name, before, after string) {
		if before != after {
			changes[name] = map[string]any{"old": before, "new": after}
		}
	}
	field("name", prior.Name, next.Name)
	field("email", prior.Email, next.Email)
	field("department", prior.Department, next.Department)
	field("programme", prior.Programme, next.Programme)
	return changes
}
