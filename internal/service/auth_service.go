package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todoapi/internal/auth"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

var (
	// ErrDuplicateEmail is returned when signing up with an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles signup and login.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	bcryptCost int
}

// NewAuthService creates a new authentication service. bcryptCost is the
// process-wide hashing work factor from configuration.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password. The lookup is a fast
// path only; the store's unique index on email is what guarantees at most
// one of two concurrent signups wins.
func (s *authService) Register(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a bearer token carrying the user's
// id. The existence check is explicit: a missing user short-circuits before
// any hash comparison.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
