package ports

import (
	"context"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// AuditRecord is the input to AuditRecorder.Record.
type AuditRecord struct {
	Action      domain.AuditAction
	EntityKind  domain.EntityKind
	EntityID    string
	PerformerID string
	Details     domain.AuditDetails
	// Timestamp is when the mutation happened. Recorders stamp it on the way
	// in when the caller leaves it zero.
	Timestamp time.Time
}

// AuditRecorder appends audit entries. Record never fails from the caller's
// point of view; persistence problems are reported to the operational log.
type AuditRecorder interface {
	Record(ctx context.Context, rec AuditRecord)
}

// AuditReader exposes the chronological audit feed.
type AuditReader interface {
	ListChronological(ctx context.Context, limit int) ([]domain.AuditEntryView, error)
}

type performerKey struct{}

// WithPerformer attaches the acting user's id to ctx.
func WithPerformer(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, performerKey{}, userID)
}

// PerformerFrom returns the acting user's id, or "" when none is known.
func PerformerFrom(ctx context.Context) string {
	id, _ := ctx.Value(performerKey{}).(string)
	return id
}
