package usecases

import (
	"context"

	"zenmai/internal/application/user/dto"
	"zenmai/internal/domain/user"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

type GetUserQuery struct {
	UserID string
}

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if len(query.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	found, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.UserDTO{ID: found.ID(), Name: found.Name()}, nil
}
