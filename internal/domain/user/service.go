package user

import (
	"context"
	"strings"
	"time"

	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, u *User) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	if u.Name == "" {
		return appErrors.NewValidationError("name", "is required")
	}
	if u.Email == "" {
		return appErrors.NewValidationError("email", "is required")
	}

	now := time.Now()
	u.Id = pkg.GenerateULID()
	u.CreatedAt = now
	u.UpdatedAt = now

	return s.Repository.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

func (s *Service) UpdateName(ctx context.Context, id ulid.ULID, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = name
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the user together with all owned goals and expenses.
func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}
