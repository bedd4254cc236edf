package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of record an audit entry refers to.
type EntityType string

const (
	EntityTypeDraft        EntityType = "draft"
	EntityTypeCatalog      EntityType = "course_catalog"
	EntityTypeEmployee     EntityType = "employee"
	EntityTypeRegistration EntityType = "registration"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDraft, EntityTypeCatalog, EntityTypeEmployee, EntityTypeRegistration:
		return true
	}
	return false
}

// AuditAction is the kind of mutation recorded.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs an administrative mutation. Actor is "admin" for admin
// sessions and the employee ID otherwise. EntityID is textual because
// employees are keyed by string and drafts by UUID.
type AuditRecord struct {
	ID         uuid.UUID
	Actor      string
	EntityType EntityType
	EntityID   string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
