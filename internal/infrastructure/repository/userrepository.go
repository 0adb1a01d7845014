package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"zenmai/internal/domain/user"
	"zenmai/internal/infrastructure/persistence/mappers"
	"zenmai/internal/infrastructure/persistence/models"
	apperrors "zenmai/internal/shared/errors"
	"zenmai/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(u)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewValidationError(fmt.Sprintf("id '%s' is already exists.", u.ID()))
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":            u.Name(),
			"hashed_password": u.HashedPassword(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByID(ctx context.Context, userID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}
