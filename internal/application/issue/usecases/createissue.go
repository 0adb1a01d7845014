package usecases

import (
	"context"
	"fmt"
	"time"

	"zenmai/internal/domain/issue"
	"zenmai/internal/shared/db"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

// FileUpload carries an uploaded file already read off the wire. Only files
// with a non-empty filename reach a command.
type FileUpload struct {
	Name string
	Data []byte
}

type CreateIssueCommand struct {
	Subject string
	StateID uint
	Body    string
	UserID  string
	Files   []FileUpload
}

type CreateIssueResult struct {
	IssueID uint
}

type CreateIssueUseCase struct {
	issueRepo issue.IssueRepository
	stateRepo issue.StateRepository
	txMgr     db.Transactor
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	stateRepo issue.StateRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		stateRepo: stateRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute creates an issue together with its first comment. Both rows, plus
// any attachments, commit in a single transaction.
func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "subject", cmd.Subject, "user_id", cmd.UserID)

	if len(cmd.Subject) == 0 {
		return nil, errors.NewValidationError("subject is required")
	}
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if _, err := uc.stateRepo.GetByID(ctx, cmd.StateID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("invalid state")
		}
		return nil, err
	}

	newIssue, err := issue.NewIssue(cmd.Subject, cmd.StateID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	attachedFiles, err := buildAttachedFiles(cmd.Files)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	comment, err := issue.NewComment(0, cmd.UserID, cmd.Body, time.Time{}, attachedFiles)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newIssue.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return fmt.Errorf("failed to save issue: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to save issue", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("issue created successfully", "issue_id", newIssue.ID())

	return &CreateIssueResult{IssueID: newIssue.ID()}, nil
}

// buildAttachedFiles converts uploads to domain attachments, skipping
// uploads whose filename sanitizes to nothing.
func buildAttachedFiles(files []FileUpload) ([]*issue.AttachedFile, error) {
	if len(files) == 0 {
		return nil, nil
	}

	attachedFiles := make([]*issue.AttachedFile, 0, len(files))
	for _, f := range files {
		if len(f.Name) == 0 {
			continue
		}
		af, err := issue.NewAttachedFile(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		attachedFiles = append(attachedFiles, af)
	}

	if len(attachedFiles) == 0 {
		return nil, nil
	}
	return attachedFiles, nil
}
