package usecases

import (
	"context"

	"zenmai/internal/application/issue/dto"
	"zenmai/internal/domain/issue"
	"zenmai/internal/shared/logger"
)

type ListIssuesUseCase struct {
	issueRepo issue.IssueRepository
	stateRepo issue.StateRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(
	issueRepo issue.IssueRepository,
	stateRepo issue.StateRepository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo: issueRepo,
		stateRepo: stateRepo,
		logger:    logger,
	}
}

// Execute lists all issues in ID order with state names joined in. The state
// table is tiny, so it is loaded once rather than per issue.
func (uc *ListIssuesUseCase) Execute(ctx context.Context) ([]dto.IssueListItemDTO, error) {
	issues, err := uc.issueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	states, err := uc.stateRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list states", "error", err)
		return nil, err
	}

	stateNames := make(map[uint]string, len(states))
	for _, s := range states {
		stateNames[s.ID()] = s.Name()
	}

	items := make([]dto.IssueListItemDTO, 0, len(issues))
	for _, i := range issues {
		items = append(items, dto.IssueListItemDTO{
			ID:        i.ID(),
			Subject:   i.Subject(),
			StateID:   i.StateID(),
			StateName: stateNames[i.StateID()],
		})
	}

	return items, nil
}
