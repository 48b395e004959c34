package ports

import "context"

// Transactor runs fn as a single unit of work: either every write made
// through the repositories with the ctx passed to fn is applied, or none is.
// Implementations may call fn more than once when the store reports a
// transient conflict, so fn must not have side effects outside the store.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
