package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/config"
	"bloodlifesaver/api/internal/ids"
	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/repository"
	"bloodlifesaver/api/internal/security"
)

const minPasswordLength = 6

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Name     string
}

type AuthResult struct {
	User  models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" || input.Role == "" || input.Name == "" {
		return AuthResult{}, validationError("All fields are required")
	}

	role := models.Role(input.Role)
	if !role.Valid() {
		return AuthResult{}, validationError("Invalid role")
	}

	if len(input.Password) < minPasswordLength {
		return AuthResult{}, validationError("Password must be at least 6 characters")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		Name:         input.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	// Not transactional with the insert: a signing failure here leaves the
	// user row in place and surfaces as a 500.
	token, err := security.GenerateAccessToken(s.cfg.Security.JWTSecret, user, s.cfg.Security.JWTTTL)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	return AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return AuthResult{}, validationError("Email and password are required")
	}

	// Unknown email and wrong password report the same error.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := security.GenerateAccessToken(s.cfg.Security.JWTSecret, user, s.cfg.Security.JWTTTL)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}
