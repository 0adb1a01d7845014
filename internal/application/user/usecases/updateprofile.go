package usecases

import (
	"context"

	"zenmai/internal/application/user/dto"
	"zenmai/internal/domain/user"
	"zenmai/internal/infrastructure/auth"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

// UpdateProfileCommand updates the display name and, when Password is
// non-empty, replaces the password.
type UpdateProfileCommand struct {
	UserID         string
	Name           string
	Password       string
	PasswordRetype string
}

type UpdateProfileUseCase struct {
	userRepo user.UserRepository
	hasher   auth.PasswordHasher
	logger   logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.UserRepository,
	hasher auth.PasswordHasher,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Password != cmd.PasswordRetype {
		return nil, errors.NewValidationError("password is not matched.")
	}

	found, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := found.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.Password) != 0 {
		hashed, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password", err.Error())
		}
		if err := found.ChangePassword(hashed); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated successfully", "user_id", found.ID())

	return &dto.UserDTO{ID: found.ID(), Name: found.Name()}, nil
}
