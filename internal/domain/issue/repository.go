package issue

import (
	"context"
)

// IssueRepository persists issues. Save writes the issue together with its
// first comment and that comment's attachments in one transaction.
type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	List(ctx context.Context) ([]*Issue, error)
}

// CommentRepository persists comments appended to existing issues.
// Save writes the comment and its attachments in one transaction.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)
}

// StateRepository reads the issue state table. List returns states ordered
// ascending by numeric value.
type StateRepository interface {
	List(ctx context.Context) ([]*State, error)
	GetByID(ctx context.Context, stateID uint) (*State, error)
}

// AttachedFileRepository reads stored attachments for download.
type AttachedFileRepository interface {
	GetByID(ctx context.Context, fileID uint) (*AttachedFile, error)
}
