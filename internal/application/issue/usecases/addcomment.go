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

// AddCommentCommand appends a comment to an existing issue. NewSubject and
// NewStateID are optional overrides; the zero value leaves the field as-is.
type AddCommentCommand struct {
	IssueID    uint
	UserID     string
	Body       string
	NewSubject string
	NewStateID uint
	Files      []FileUpload
}

type AddCommentResult struct {
	IssueID   uint
	CommentID uint
}

type AddCommentUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	stateRepo   issue.StateRepository
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	stateRepo issue.StateRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		stateRepo:   stateRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute saves the comment and applies any subject or state override to the
// issue, all in one transaction.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "issue_id", cmd.IssueID, "user_id", cmd.UserID)

	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	if cmd.NewStateID != 0 {
		if _, err := uc.stateRepo.GetByID(ctx, cmd.NewStateID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("invalid state")
			}
			return nil, err
		}
	}

	attachedFiles, err := buildAttachedFiles(cmd.Files)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.UserID, cmd.Body, time.Time{}, attachedFiles)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	issueChanged := false
	if len(cmd.NewSubject) != 0 && cmd.NewSubject != existing.Subject() {
		if err := existing.UpdateSubject(cmd.NewSubject); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		issueChanged = true
	}
	if cmd.NewStateID != 0 && cmd.NewStateID != existing.StateID() {
		if err := existing.ChangeState(cmd.NewStateID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		issueChanged = true
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}
		if issueChanged {
			if err := uc.issueRepo.Update(txCtx, existing); err != nil {
				return fmt.Errorf("failed to update issue: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to add comment", "issue_id", cmd.IssueID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("comment added successfully", "issue_id", cmd.IssueID, "comment_id", comment.ID())

	return &AddCommentResult{IssueID: cmd.IssueID, CommentID: comment.ID()}, nil
}
