package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/repository"
)

// ErrInvalidCredentials is returned for unknown usernames and bad passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates administrators and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type authService struct {
	admins     repository.AdminRepository
	validator  *validator.Validate
	secret     []byte
	sessionTTL time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService constructs the auth service.
func NewAuthService(admins repository.AdminRepository, validate *validator.Validate, secret string, sessionTTL time.Duration, logger zerolog.Logger) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}

	return &authService{
		admins:     admins,
		validator:  validate,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		logger:     logger.With().Str("component", "auth_service").Logger(),
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LoginResponse{}, err
	}

	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("failed to load admin account")
		return dto.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.sessionTTL)
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"role":     "admin",
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign session token")
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Username:  admin.Username,
	}, nil
}

// HashPassword produces a bcrypt hash for storing admin credentials.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}
