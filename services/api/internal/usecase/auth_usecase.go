package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brand-sell/pkg/jwt"
	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// TokenRevoker records logged-out token ids until they expire.
type TokenRevoker interface {
	Enabled() bool
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthUseCase interface {
	Register(name, email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	revoker    TokenRevoker
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	revoker TokenRevoker,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoker:    revoker,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(name, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		uc.logger.Error("Failed to look up user: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Error("Failed to look up user: %v", err)
		return nil, "", fmt.Errorf("failed to log in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Logout revokes the presented token. Without a revocation store the token
// stays valid until it expires.
func (uc *authUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.revoker == nil || !uc.revoker.Enabled() {
		uc.logger.Warn("Logout without revocation store, token %s stays valid until %s", tokenID, expiresAt.Format(time.RFC3339))
		return nil
	}

	if err := uc.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		uc.logger.Error("Failed to revoke token: %v", err)
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

func (uc *authUseCase) DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	if err := uc.userRepo.Delete(userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("Failed to delete user %s: %v", userID, err)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if err := uc.Logout(ctx, tokenID, expiresAt); err != nil {
		uc.logger.Warn("Account %s deleted but its token was not revoked: %v", userID, err)
	}
	return nil
}
