package ports

import (
	"context"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// AuditRepository is the append-only audit store.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEntry) error
	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
