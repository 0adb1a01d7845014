package usecases

import (
	"context"
	"html/template"

	"zenmai/internal/application/issue/dto"
	"zenmai/internal/domain/issue"
	"zenmai/internal/domain/user"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
	"zenmai/internal/shared/services/markdown"
)

type GetIssueQuery struct {
	IssueID uint
}

type GetIssueUseCase struct {
	issueRepo issue.IssueRepository
	stateRepo issue.StateRepository
	userRepo  user.UserRepository
	markdown  markdown.Service
	logger    logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.IssueRepository,
	stateRepo issue.StateRepository,
	userRepo user.UserRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		stateRepo: stateRepo,
		userRepo:  userRepo,
		markdown:  markdownSvc,
		logger:    logger,
	}
}

// Execute assembles the full issue view: state, comments in publication
// order, attachment metadata, and rendered comment bodies. Author names are
// resolved with one lookup per distinct user.
func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	found, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	state, err := uc.stateRepo.GetByID(ctx, found.StateID())
	if err != nil {
		return nil, err
	}

	comments := found.Comments()
	userNames := uc.resolveUserNames(ctx, comments)

	commentDTOs := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		bodyHTML, err := uc.markdown.ToHTMLSanitized(c.Body())
		if err != nil {
			uc.logger.Warnw("failed to render comment body", "comment_id", c.ID(), "error", err)
			bodyHTML = ""
		}

		files := c.AttachedFiles()
		fileDTOs := make([]dto.AttachedFileDTO, 0, len(files))
		for _, f := range files {
			fileDTOs = append(fileDTOs, dto.AttachedFileDTO{ID: f.ID(), Name: f.Name()})
		}

		commentDTOs = append(commentDTOs, dto.CommentDTO{
			ID:            c.ID(),
			UserID:        c.UserID(),
			UserName:      userNames[c.UserID()],
			PubDate:       c.PubDate(),
			Body:          c.Body(),
			BodyHTML:      template.HTML(bodyHTML),
			AttachedFiles: fileDTOs,
		})
	}

	return &dto.IssueDTO{
		ID:      found.ID(),
		Subject: found.Subject(),
		StateID: found.StateID(),
		State: dto.StateDTO{
			ID:    state.ID(),
			Name:  state.Name(),
			Value: state.Value(),
		},
		Comments: commentDTOs,
	}, nil
}

// resolveUserNames maps each distinct comment author to a display name.
// Authors whose account no longer exists fall back to their ID.
func (uc *GetIssueUseCase) resolveUserNames(ctx context.Context, comments []*issue.Comment) map[string]string {
	names := make(map[string]string)
	for _, c := range comments {
		userID := c.UserID()
		if _, ok := names[userID]; ok {
			continue
		}

		author, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				uc.logger.Warnw("failed to load comment author", "user_id", userID, "error", err)
			}
			names[userID] = userID
			continue
		}
		names[userID] = author.Name()
	}
	return names
}
