package usecases

import (
	"context"

	"zenmai/internal/application/user/dto"
)

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error)
}

type AuthenticateUserExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}
