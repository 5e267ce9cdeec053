package services

import (
	"context"

	"github.com/google/uuid"

	"canteen/internal/models/db_models"
	"canteen/internal/models/request_models"
	"canteen/internal/models/response_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func toUserResponse(user *db_models.User) *response_models.UserResponse {
	return &response_models.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		Allergies: user.Allergies,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error) {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		Role:         db_models.NormalizeRole(request.Role),
		Allergies:    request.Allergies,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toUserResponse(user), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Allergies != nil {
		user.Allergies = *request.Allergies
	}
	if request.Password != nil {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		user.PasswordHash = hashed
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}
