package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"zenmai/internal/domain/issue"
	"zenmai/internal/infrastructure/persistence/mappers"
	"zenmai/internal/infrastructure/persistence/models"
	apperrors "zenmai/internal/shared/errors"
	"zenmai/internal/shared/db"
)

type AttachedFileRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewAttachedFileRepository(gdb *gorm.DB) *AttachedFileRepository {
	return &AttachedFileRepository{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *AttachedFileRepository) GetByID(ctx context.Context, fileID uint) (*issue.AttachedFile, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AttachedFileModel
	if err := tx.First(&model, fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("attached file not found")
		}
		return nil, fmt.Errorf("failed to find attached file: %w", err)
	}

	return r.mapper.AttachedFileToDomain(&model)
}
