package repository

import (
	"context"

	"gorm.io/gorm"

	"zenmai/internal/domain/issue"
	"zenmai/internal/infrastructure/persistence/mappers"
	"zenmai/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *issue.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return saveComment(tx, r.mapper, c)
}

func (r *CommentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return loadComments(tx, r.mapper, issueID)
}
