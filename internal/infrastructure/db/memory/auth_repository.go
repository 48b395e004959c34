package memory

import (
	"context"
	"strings"

	"github.com/systrack/systrack-api/internal/core/domain"
)

type AuthRepository struct {
	s *Store
}

func NewAuthRepository(s *Store) *AuthRepository {
	return &AuthRepository{s: s}
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	email := strings.ToLower(user.Email)
	err := r.s.write(ctx, func() error {
		for _, u := range r.s.users {
			if u.Email == email {
				return domain.ErrUserExists
			}
		}
		c := *user
		c.Email = email
		r.s.users[c.ID] = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	c := *user
	c.Email = email
	return &c, nil
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(email)
	var out *domain.User
	r.s.read(ctx, func() {
		for _, u := range r.s.users {
			if u.Email == email {
				c := *u
				out = &c
				return
			}
		}
	})
	if out == nil {
		return nil, domain.ErrUserNotFound
	}
	return out, nil
}

func (r *AuthRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	r.s.read(ctx, func() {
		for _, id := range ids {
			if u, ok := r.s.users[id]; ok {
				c := *u
				out = append(out, &c)
			}
		}
	})
	return out, nil
}
