package usecases

import (
	"context"

	"zenmai/internal/application/issue/dto"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context) ([]dto.IssueListItemDTO, error)
}

type ListStatesExecutor interface {
	Execute(ctx context.Context) ([]dto.StateDTO, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}
