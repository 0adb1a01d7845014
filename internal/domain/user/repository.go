package user

import (
	"context"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	ExistsByID(ctx context.Context, userID string) (bool, error)
}
