package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// UserService implements user management for the admin panel.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.Find(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return 0, domain.ErrMissingFields
	}
	if !domain.ValidEmail(email) {
		return 0, domain.ErrInvalidEmail
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:  name,
		Email: email,
		Phone: input.Phone,
		City:  input.City,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user created")
	return id, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (bool, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return false, err
	}

	next := *current
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		next.Email = strings.TrimSpace(*input.Email)
	}
	if next.Name == "" || next.Email == "" {
		return false, domain.ErrMissingFields
	}
	if !domain.ValidEmail(next.Email) {
		return false, domain.ErrInvalidEmail
	}
	if input.Phone != nil {
		next.Phone = input.Phone
	}
	if input.City != nil {
		next.City = input.City
	}

	return s.repo.Update(ctx, &next)
}

// Delete reports whether a row was actually removed; deleting an unknown
// user is not an error for the admin panel.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info().Int64("user_id", id).Msg("user deleted")
	}
	return removed, nil
}
