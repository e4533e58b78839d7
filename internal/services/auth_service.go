// internal/services/auth_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/config"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// invalidCredentials is deliberately identical for an unknown email and
// a wrong password, so a caller cannot probe which emails exist.
const invalidCredentials = "Invalid credentials"

type AuthService struct {
	users store.UserStore
	cfg   *config.Config
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func NewAuthService(users store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

// Register creates a self-service account. The role is always "user";
// admins are only created through CreateAdmin.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	user, err := s.createUser(ctx, req, models.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

// CreateAdmin is Register with the role forced to admin. The route in
// front of it is restricted to super admins.
func (s *AuthService) CreateAdmin(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	return s.createUser(ctx, req, models.RoleAdmin)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, Invalid(invalidCredentials)
		}
		return nil, Internal("Login failed", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, Invalid(invalidCredentials)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, Internal("Failed to load profile", err)
	}
	return user, nil
}

// EnsureSuperAdmin seeds the configured super admin account if it does
// not exist yet. Called once at startup when ADMIN_EMAIL is set.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, name, email, password string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return Internal("Failed to check super admin account", err)
	}

	user := &models.User{Name: name, Email: email, Role: models.RoleSuperAdmin}
	if err := user.SetPassword(password); err != nil {
		return Internal("Failed to hash password", err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return Internal("Failed to create super admin account", err)
	}

	logrus.WithField("email", email).Info("Super admin account created")
	return nil
}

func (s *AuthService) createUser(ctx context.Context, req *RegisterRequest, role models.Role) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, Conflict("Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("Registration failed", err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, Internal("Failed to hash password", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Conflict("Email already registered")
		}
		return nil, Internal("Registration failed", err)
	}
	return user, nil
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Role, user.Email, s.cfg.JWT.TTL)
	if err != nil {
		if errors.Is(err, utils.ErrNoSecret) {
			return "", Misconfigured("JWT secret is not configured")
		}
		return "", Internal("Failed to sign token", err)
	}
	return token, nil
}
