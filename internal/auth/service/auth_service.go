package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kakineha/coffee-backend/internal/auth/domain"
	"github.com/kakineha/coffee-backend/internal/auth/repository"
	"github.com/kakineha/coffee-backend/internal/platform/config"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

// Error strings below are part of the API surface; handlers return them verbatim.
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrInvalidToken       = errors.New("Could not validate credentials")
)

const (
	tokenLifetime = 24 * time.Hour

	seedStatusCreated = "created"
	seedStatusExists  = "exists"
)

type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error)
	SeedAdmin(ctx context.Context) (*domain.SeedAdminResult, error)
	ResolveToken(ctx context.Context, tokenString string) (*domain.User, error)
}

type authService struct {
	repo      repository.UserRepository
	secretKey []byte
	seedEmail string
	seedPass  string
}

func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig) AuthService {
	return &authService{
		repo:      repo,
		secretKey: []byte(cfg.SecretKey),
		seedEmail: cfg.SeedAdminEmail,
		seedPass:  cfg.SeedAdminPassword,
	}
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", err)
		return nil, fmt.Errorf("could not process registration: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		FullName:     req.FullName,
	}

	if err = s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		logger.Error("Register: failed to create user in repo", err)
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Username))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			logger.Error("Login: failed to get user by email", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.issueToken(user)
	if err != nil {
		logger.Error("Login: failed to sign token", err)
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &domain.TokenResponse{AccessToken: tokenString, TokenType: "bearer"}, nil
}

// SeedAdmin bootstraps the configured admin account. Calling it again after
// the admin exists reports "exists" and changes nothing. The plaintext
// password is returned exactly once, on creation, for operator bootstrap.
func (s *authService) SeedAdmin(ctx context.Context) (*domain.SeedAdminResult, error) {
	_, err := s.repo.GetUserByEmail(ctx, s.seedEmail)
	if err == nil {
		return &domain.SeedAdminResult{Status: seedStatusExists, Email: s.seedEmail}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		logger.Error("SeedAdmin: failed to check existing admin", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.seedPass), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("SeedAdmin: failed to hash password", err)
		return nil, err
	}

	admin := &domain.User{
		Email:        s.seedEmail,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleAdmin,
		FullName:     "Admin",
	}
	if err = s.repo.CreateUser(ctx, admin); err != nil {
		logger.Error("SeedAdmin: failed to create admin", err)
		return nil, err
	}

	return &domain.SeedAdminResult{
		Status:   seedStatusCreated,
		Email:    s.seedEmail,
		Password: s.seedPass,
	}, nil
}

// ResolveToken verifies the signature and expiry, then resolves the subject
// against the user store. Any failure collapses into ErrInvalidToken so the
// caller cannot distinguish a tampered token from a deleted user.
func (s *authService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *authService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
