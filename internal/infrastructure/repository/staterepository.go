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

type StateRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewStateRepository(gdb *gorm.DB) *StateRepository {
	return &StateRepository{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
	}
}

// List returns every state ordered ascending by numeric value.
func (r *StateRepository) List(ctx context.Context) ([]*issue.State, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var stateModels []models.StateModel
	if err := tx.Order("value ASC").Find(&stateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	states := make([]*issue.State, len(stateModels))
	for idx := range stateModels {
		s, err := r.mapper.StateToDomain(&stateModels[idx])
		if err != nil {
			return nil, err
		}
		states[idx] = s
	}

	return states, nil
}

func (r *StateRepository) GetByID(ctx context.Context, stateID uint) (*issue.State, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.StateModel
	if err := tx.First(&model, stateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("state not found")
		}
		return nil, fmt.Errorf("failed to find state: %w", err)
	}

	return r.mapper.StateToDomain(&model)
}
