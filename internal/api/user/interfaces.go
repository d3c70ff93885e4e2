package user

import (
	"context"

	"github.com/prepmate/interview-backend/internal/entity"
)

type UserUsecase interface {
	Signup(ctx context.Context, req *entity.SignupRequest) (*entity.TokenResponse, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.TokenResponse, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}
