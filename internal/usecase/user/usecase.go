package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/auth"
	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/validator"
	"github.com/prepmate/interview-backend/internal/repository"
)

// UserUsecase implements registration, login and profile lookup.
type UserUsecase struct {
	userRepo  repository.UserRepository
	tokens    *auth.TokenService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewUsecase creates a new user use case
func NewUsecase(
	userRepo repository.UserRepository,
	tokens *auth.TokenService,
	validator *validator.Validator,
	logger *zap.Logger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

// Signup registers a new account and returns a fresh token.
func (uc *UserUsecase) Signup(ctx context.Context, req *entity.SignupRequest) (*entity.TokenResponse, error) {
	if err := uc.validator.ValidateSignup(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	ctxzap.Info(ctx, "user registered", zap.String("user_id", user.ID))
	return uc.issueToken(user)
}

// Login verifies credentials and returns a fresh token. Wrong email and
// wrong password are indistinguishable to the caller.
func (uc *UserUsecase) Login(ctx context.Context, req *entity.LoginRequest) (*entity.TokenResponse, error) {
	if err := uc.validator.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, entity.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, entity.ErrInvalidCredentials
	}

	ctxzap.Info(ctx, "user logged in", zap.String("user_id", user.ID))
	return uc.issueToken(user)
}

// GetUser returns the profile for an authenticated user id.
func (uc *UserUsecase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (uc *UserUsecase) issueToken(user *entity.User) (*entity.TokenResponse, error) {
	token, expiresAt, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &entity.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
