package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/policy"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// UserService exposes user lookup and listing.
type UserService struct {
	repo   userRepository
	logger *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo userRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// Get returns a user's profile. Non-admins may only read their own.
func (s *UserService) Get(ctx context.Context, claims *models.JWTClaims, id int64) (*models.User, error) {
	if !policy.CanViewUser(claims, id) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Not authorized to access this user's information")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("User with ID %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// List returns users matching the filter. Admin-only; the route guard
// enforces the role, this just runs the query.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.UserResponse, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].Response())
	}
	return responses, nil
}

// ListTutors returns every user with the tutor role.
func (s *UserService) ListTutors(ctx context.Context) ([]models.UserResponse, error) {
	role := models.RoleTutor
	return s.List(ctx, models.UserFilter{Role: &role})
}
