// internal/services/user_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// UserService covers admin-side user management. Password hashes never
// leave the service; the model hides them from serialization.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

type UpdateUserRequest struct {
	Name  string      `json:"name" validate:"required"`
	Email string      `json:"email" validate:"required,email"`
	Role  models.Role `json:"role" validate:"required"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, Internal("Failed to fetch users", err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, Internal("Failed to fetch user", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}
	if !req.Role.Valid() {
		return nil, Invalid("Invalid role")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, Internal("Failed to fetch user", err)
	}

	// Email must stay unique, excluding this user.
	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		if existing.ID != user.ID {
			return nil, Conflict("Email already in use")
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("Failed to check email uniqueness", err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, Conflict("Email already in use")
		case errors.Is(err, store.ErrNotFound):
			return nil, NotFound("User not found")
		default:
			return nil, Internal("Failed to update user", err)
		}
	}
	return user, nil
}

// Delete removes a user. Actors cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == actorID {
		return Invalid("You cannot delete your own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("User not found")
		}
		return Internal("Failed to delete user", err)
	}
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, req *UpdatePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return Invalid("Password must be at least 6 characters")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("User not found")
		}
		return Internal("Failed to fetch user", err)
	}

	if err := user.SetPassword(req.Password); err != nil {
		return Internal("Failed to hash password", err)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return Internal("Failed to update password", err)
	}
	return nil
}
