// Package memory is an in-process implementation of the repository and
// transactor ports. It backs STORE=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/systrack/systrack-api/internal/core/domain"
)

// Store holds every collection behind one RWMutex. A transaction holds the
// write lock for its whole body and restores a snapshot if the body fails.
type Store struct {
	mu sync.RWMutex

	parts     map[string]*domain.Part
	systems   map[string]*domain.System
	employees map[string]*domain.Employee
	users     map[string]*domain.User
	audit     []*domain.AuditEntry
}

func New() *Store {
	return &Store{
		parts:     map[string]*domain.Part{},
		systems:   map[string]*domain.System{},
		employees: map[string]*domain.Employee{},
		users:     map[string]*domain.User{},
	}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// WithinTransaction runs fn with exclusive access to the store. Nested calls
// join the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) read(ctx context.Context, fn func()) {
	if !s.inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}

type snapshot struct {
	parts     map[string]*domain.Part
	systems   map[string]*domain.System
	employees map[string]*domain.Employee
	users     map[string]*domain.User
	auditLen  int
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		parts:     make(map[string]*domain.Part, len(s.parts)),
		systems:   make(map[string]*domain.System, len(s.systems)),
		employees: make(map[string]*domain.Employee, len(s.employees)),
		users:     make(map[string]*domain.User, len(s.users)),
		auditLen:  len(s.audit),
	}
	for k, v := range s.parts {
		snap.parts[k] = v.Clone()
	}
	for k, v := range s.systems {
		snap.systems[k] = v.Clone()
	}
	for k, v := range s.employees {
		snap.employees[k] = v.Clone()
	}
	for k, v := range s.users {
		u := *v
		snap.users[k] = &u
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.parts = snap.parts
	s.systems = snap.systems
	s.employees = snap.employees
	s.users = snap.users
	s.audit = s.audit[:snap.auditLen]
}

// newestFirst orders records by creation time, most recent first, with the
// id as a tie breaker.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) > id(items[j])
	})
}
