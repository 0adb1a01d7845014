package issue

import (
	"fmt"
)

type Issue struct {
	id       uint
	subject  string
	stateID  uint
	comments []*Comment
}

func NewIssue(subject string, stateID uint) (*Issue, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 256 {
		return nil, fmt.Errorf("subject exceeds maximum length of 256 characters")
	}
	if stateID == 0 {
		return nil, fmt.Errorf("state ID is required")
	}

	return &Issue{
		subject:  subject,
		stateID:  stateID,
		comments: []*Comment{},
	}, nil
}

func ReconstructIssue(id uint, subject string, stateID uint) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if stateID == 0 {
		return nil, fmt.Errorf("state ID is required")
	}

	return &Issue{
		id:       id,
		subject:  subject,
		stateID:  stateID,
		comments: []*Comment{},
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) Subject() string {
	return i.subject
}

func (i *Issue) StateID() uint {
	return i.stateID
}

func (i *Issue) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(i.comments))
	copy(commentsCopy, i.comments)
	return commentsCopy
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// UpdateSubject replaces the subject. Subject edits ride on comment
// submissions; an empty override leaves the subject untouched upstream.
func (i *Issue) UpdateSubject(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject cannot be empty")
	}
	if len(subject) > 256 {
		return fmt.Errorf("subject exceeds maximum length of 256 characters")
	}
	i.subject = subject
	return nil
}

func (i *Issue) ChangeState(stateID uint) error {
	if stateID == 0 {
		return fmt.Errorf("state ID cannot be zero")
	}
	i.stateID = stateID
	return nil
}

func (i *Issue) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.IssueID() != 0 && i.id != 0 && comment.IssueID() != i.id {
		return fmt.Errorf("comment issue ID mismatch")
	}
	i.comments = append(i.comments, comment)
	return nil
}
