package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/auth"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
	"github.com/skillsync/skillsync/internal/pkg/validation"
)

// AuthService handles signup, login and token refresh
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateUsername checks the handle format
func (s *AuthService) validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.ValidUsername(username) {
		return fmt.Errorf("%w: username must be 3-30 characters of letters, digits, dots or underscores", apperrors.ErrValidationFailed)
	}
	return nil
}

// validatePassword checks password requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	return nil
}

// Register creates a new account and returns a token pair
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	college := sanitize.Text(req.College)
	if college == "" {
		return nil, fmt.Errorf("%w: college cannot be empty", apperrors.ErrValidationFailed)
	}

	// Pre-check keeps the common case friendly; the unique constraint
	// still catches races.
	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyTaken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		College:  college,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyTaken) {
			return nil, apperrors.ErrUsernameAlreadyTaken
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")

	return s.generateTokenResponse(ctx, user)
}

// Login authenticates a user by handle and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the handle exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTokenNotFound, apperrors.ErrTokenExpired, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	// Revoke the old token so it cannot be replayed.
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes all of a user's refresh tokens
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}
	return nil
}

// generateTokenResponse mints a token pair and persists the refresh token
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		UserID:           user.ID,
		Username:         user.Username,
	}, nil
}
