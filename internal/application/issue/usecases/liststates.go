package usecases

import (
	"context"

	"zenmai/internal/application/issue/dto"
	"zenmai/internal/domain/issue"
	"zenmai/internal/shared/logger"
)

type ListStatesUseCase struct {
	stateRepo issue.StateRepository
	logger    logger.Interface
}

func NewListStatesUseCase(stateRepo issue.StateRepository, logger logger.Interface) *ListStatesUseCase {
	return &ListStatesUseCase{
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// Execute returns all selectable states ordered by ascending value.
func (uc *ListStatesUseCase) Execute(ctx context.Context) ([]dto.StateDTO, error) {
	states, err := uc.stateRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list states", "error", err)
		return nil, err
	}

	stateDTOs := make([]dto.StateDTO, 0, len(states))
	for _, s := range states {
		stateDTOs = append(stateDTOs, dto.StateDTO{
			ID:    s.ID(),
			Name:  s.Name(),
			Value: s.Value(),
		})
	}

	return stateDTOs, nil
}
