package usecases

import (
	"context"

	"zenmai/internal/domain/user"
	"zenmai/internal/infrastructure/auth"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

type AuthenticateUserCommand struct {
	ID       string
	Password string
}

// AuthenticateUserResult reports the outcome without distinguishing a
// missing account from a wrong password.
type AuthenticateUserResult struct {
	Authenticated bool
	UserID        string
}

type AuthenticateUserUseCase struct {
	userRepo user.UserRepository
	hasher   auth.PasswordHasher
	logger   logger.Interface
}

func NewAuthenticateUserUseCase(
	userRepo user.UserRepository,
	hasher auth.PasswordHasher,
	logger logger.Interface,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	if len(cmd.ID) == 0 || len(cmd.Password) == 0 {
		return &AuthenticateUserResult{Authenticated: false}, nil
	}

	found, err := uc.userRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Infow("login attempt for unknown user", "user_id", cmd.ID)
			return &AuthenticateUserResult{Authenticated: false}, nil
		}
		uc.logger.Errorw("failed to load user for authentication", "user_id", cmd.ID, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, found.HashedPassword()); err != nil {
		uc.logger.Infow("login attempt with wrong password", "user_id", cmd.ID)
		return &AuthenticateUserResult{Authenticated: false}, nil
	}

	uc.logger.Infow("user authenticated", "user_id", found.ID())

	return &AuthenticateUserResult{Authenticated: true, UserID: found.ID()}, nil
}
