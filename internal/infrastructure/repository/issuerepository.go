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

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(gdb *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
	}
}

// Save persists the issue together with its comments and their attachments.
// Callers wrap it in a transaction via TransactionManager so the issue and
// its first comment commit or roll back together.
func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(i)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}
	if err := i.SetID(model.ID); err != nil {
		return err
	}

	for _, c := range i.Comments() {
		if c.IssueID() == 0 {
			if err := c.SetIssueID(model.ID); err != nil {
				return err
			}
		}
		if err := saveComment(tx, r.mapper, c); err != nil {
			return err
		}
	}

	return nil
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", i.ID()).
		Updates(map[string]interface{}{
			"subject":  i.Subject(),
			"state_id": i.StateID(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.IssueModel
	if err := tx.First(&model, issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	i, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	comments, err := loadComments(tx, r.mapper, model.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		if err := i.AddComment(c); err != nil {
			return nil, err
		}
	}

	return i, nil
}

func (r *IssueRepository) List(ctx context.Context) ([]*issue.Issue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var issueModels []models.IssueModel
	if err := tx.Order("id ASC").Find(&issueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for idx := range issueModels {
		i, err := r.mapper.ToDomain(&issueModels[idx])
		if err != nil {
			return nil, err
		}
		issues[idx] = i
	}

	return issues, nil
}

// loadComments fetches an issue's comments and their attachments.
// Attachments are loaded with a single IN query to avoid per-comment lookups.
func loadComments(tx *gorm.DB, mapper mappers.IssueMapper, issueID uint) ([]*issue.Comment, error) {
	var commentModels []models.CommentModel
	if err := tx.
		Where("issue_id = ?", issueID).
		Order("pub_date ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	if len(commentModels) == 0 {
		return nil, nil
	}

	commentIDs := make([]uint, len(commentModels))
	for idx, cm := range commentModels {
		commentIDs[idx] = cm.ID
	}

	var fileModels []models.AttachedFileModel
	if err := tx.
		Where("comment_id IN ?", commentIDs).
		Order("id ASC").
		Find(&fileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load attached files: %w", err)
	}

	filesByComment := make(map[uint][]*issue.AttachedFile)
	for idx := range fileModels {
		f, err := mapper.AttachedFileToDomain(&fileModels[idx])
		if err != nil {
			return nil, err
		}
		filesByComment[fileModels[idx].CommentID] = append(filesByComment[fileModels[idx].CommentID], f)
	}

	comments := make([]*issue.Comment, len(commentModels))
	for idx := range commentModels {
		c, err := mapper.CommentToDomain(&commentModels[idx])
		if err != nil {
			return nil, err
		}
		c.AttachFiles(filesByComment[c.ID()])
		comments[idx] = c
	}

	return comments, nil
}

// saveComment writes a comment row plus its attachment rows.
func saveComment(tx *gorm.DB, mapper mappers.IssueMapper, c *issue.Comment) error {
	model := mapper.CommentToModel(c)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return err
	}

	for _, f := range c.AttachedFiles() {
		if f.CommentID() == 0 {
			if err := f.SetCommentID(model.ID); err != nil {
				return err
			}
		}
		fileModel := mapper.AttachedFileToModel(f)
		if err := tx.Create(fileModel).Error; err != nil {
			return fmt.Errorf("failed to save attached file: %w", err)
		}
		if err := f.SetID(fileModel.ID); err != nil {
			return err
		}
	}

	return nil
}
