package mappers

import (
	"zenmai/internal/domain/issue"
	"zenmai/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue-side domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)

	CommentToModel(c *issue.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*issue.Comment, error)

	AttachedFileToModel(f *issue.AttachedFile) *models.AttachedFileModel
	AttachedFileToDomain(model *models.AttachedFileModel) (*issue.AttachedFile, error)

	StateToDomain(model *models.StateModel) (*issue.State, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:      i.ID(),
		Subject: i.Subject(),
		StateID: i.StateID(),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	return issue.ReconstructIssue(model.ID, model.Subject, model.StateID)
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:      c.ID(),
		IssueID: c.IssueID(),
		UserID:  c.UserID(),
		PubDate: c.PubDate(),
		Body:    c.Body(),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.CommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(model.ID, model.IssueID, model.UserID, model.Body, model.PubDate)
}

func (m *IssueMapperImpl) AttachedFileToModel(f *issue.AttachedFile) *models.AttachedFileModel {
	return &models.AttachedFileModel{
		ID:        f.ID(),
		CommentID: f.CommentID(),
		Name:      f.Name(),
		Data:      f.Data(),
	}
}

func (m *IssueMapperImpl) AttachedFileToDomain(model *models.AttachedFileModel) (*issue.AttachedFile, error) {
	return issue.ReconstructAttachedFile(model.ID, model.CommentID, model.Name, model.Data)
}

func (m *IssueMapperImpl) StateToDomain(model *models.StateModel) (*issue.State, error) {
	return issue.ReconstructState(model.ID, model.Name, model.Value)
}
