package usecases

import (
	"context"
	"fmt"

	"zenmai/internal/application/user/dto"
	"zenmai/internal/domain/user"
	"zenmai/internal/infrastructure/auth"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

type RegisterUserCommand struct {
	ID             string
	Name           string
	Password       string
	PasswordRetype string
}

type RegisterUserUseCase struct {
	userRepo user.UserRepository
	hasher   auth.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher auth.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute registers a new account. The two password fields must match and
// the chosen ID must be free.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register user use case", "user_id", cmd.ID)

	if len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("password is required")
	}
	if cmd.Password != cmd.PasswordRetype {
		return nil, errors.NewValidationError("password is not matched.")
	}

	exists, err := uc.userRepo.ExistsByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to check user existence", "user_id", cmd.ID, "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewValidationError(fmt.Sprintf("id '%s' is already exists.", cmd.ID))
	}

	hashed, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password", err.Error())
	}

	newUser, err := user.NewUser(cmd.ID, cmd.Name, hashed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		// unique constraint race between ExistsByID and Save
		if errors.IsValidationError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save user", "user_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())

	return &dto.UserDTO{ID: newUser.ID(), Name: newUser.Name()}, nil
}
