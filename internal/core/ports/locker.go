package ports

import "context"

// Locker provides mutual exclusion over named entities. Acquire blocks until
// every key is held or ctx is done, in which case it returns
// domain.ErrConflict. Keys are taken in a canonical order, so callers may
// pass them in any order. release must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (release func(), err error)
}

func SystemKey(id string) string   { return "system:" + id }
func EmployeeKey(id string) string { return "employee:" + id }
func PartKey(id string) string     { return "part:" + id }
