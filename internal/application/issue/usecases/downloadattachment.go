package usecases

import (
	"context"

	"zenmai/internal/domain/issue"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	FileID uint
}

type DownloadAttachmentResult struct {
	Name string
	Data []byte
}

type DownloadAttachmentUseCase struct {
	fileRepo issue.AttachedFileRepository
	logger   logger.Interface
}

func NewDownloadAttachmentUseCase(fileRepo issue.AttachedFileRepository, logger logger.Interface) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		fileRepo: fileRepo,
		logger:   logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	if query.FileID == 0 {
		return nil, errors.NewValidationError("file ID is required")
	}

	file, err := uc.fileRepo.GetByID(ctx, query.FileID)
	if err != nil {
		return nil, err
	}

	return &DownloadAttachmentResult{
		Name: file.Name(),
		Data: file.Data(),
	}, nil
}
