package service

import (
	"context"
	"errors"
	"time"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAccountAlreadyExists = errors.New("account with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService handles registration and login for both account types.
// Clients and trainers live in separate collections, so login probes the
// client collection first and falls back to trainers.
type AuthService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*domain.User, error)
	RegisterTrainer(ctx context.Context, name, email, password string, trainerType domain.TrainerType) (*domain.Trainer, error)
	Login(ctx context.Context, email, password string) (token string, accountID string, role domain.Role, err error)
	GetJWTSecret() string
}

type authService struct {
	userRepo      repository.UserRepository
	trainerRepo   repository.TrainerRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, trainerRepo repository.TrainerRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 24
	}
	return &authService{
		userRepo:      userRepo,
		trainerRepo:   trainerRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// RegisterUser handles new client registration.
func (s *authService) RegisterUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password cannot be empty")
	}

	// The email must be free in both collections, otherwise login would be
	// ambiguous.
	if taken, err := s.emailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrAccountAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// RegisterTrainer handles new trainer registration.
func (s *authService) RegisterTrainer(ctx context.Context, name, email, password string, trainerType domain.TrainerType) (*domain.Trainer, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}
	if trainerType != domain.TrainerTypeFitness && trainerType != domain.TrainerTypeDiet {
		return nil, errors.New("trainer type must be fitness or diet")
	}

	if taken, err := s.emailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrAccountAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	trainer := &domain.Trainer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		TrainerType:  trainerType,
		// New trainers start at a 5.0 rating that counts as one vote, so
		// the first real rating averages against it instead of replacing it.
		Rating:      5,
		RatingCount: 1,
	}

	trainerID, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, err
	}
	trainer.ID = trainerID

	trainer.PasswordHash = ""
	return trainer, nil
}

// Login authenticates either account type and returns a signed JWT.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, domain.Role, error) {
	if email == "" || password == "" {
		return "", "", "", errors.New("email and password cannot be empty")
	}

	// 1. Try the client collection.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return "", "", "", ErrAuthenticationFailed
		}
		token, err := s.generateJWT(user.ID.Hex(), domain.RoleClient)
		if err != nil {
			return "", "", "", ErrTokenGeneration
		}
		return token, user.ID.Hex(), domain.RoleClient, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", "", "", err
	}

	// 2. Fall back to trainers.
	trainer, err := s.trainerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", "", ErrAuthenticationFailed
		}
		return "", "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)) != nil {
		return "", "", "", ErrAuthenticationFailed
	}
	token, err := s.generateJWT(trainer.ID.Hex(), domain.RoleTrainer)
	if err != nil {
		return "", "", "", ErrTokenGeneration
	}
	return token, trainer.ID.Hex(), domain.RoleTrainer, nil
}

func (s *authService) emailTaken(ctx context.Context, email string) (bool, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	if _, err := s.trainerRepo.GetByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	return false, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(accountID string, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: accountID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitealthy",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
