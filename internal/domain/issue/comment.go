package issue

import (
	"fmt"
	"time"
)

type Comment struct {
	id            uint
	issueID       uint
	userID        string
	body          string
	pubDate       time.Time
	attachedFiles []*AttachedFile
}

// NewComment creates a comment. The issue ID may be zero when the comment is
// created together with a not-yet-persisted issue; it is bound after the
// issue row exists. A zero pubDate defaults to the current UTC time.
func NewComment(
	issueID uint,
	userID string,
	body string,
	pubDate time.Time,
	attachedFiles []*AttachedFile,
) (*Comment, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("body exceeds maximum length of 5000 characters")
	}

	if pubDate.IsZero() {
		pubDate = time.Now().UTC()
	}

	return &Comment{
		issueID:       issueID,
		userID:        userID,
		body:          body,
		pubDate:       pubDate,
		attachedFiles: attachedFiles,
	}, nil
}

func ReconstructComment(
	id uint,
	issueID uint,
	userID string,
	body string,
	pubDate time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:      id,
		issueID: issueID,
		userID:  userID,
		body:    body,
		pubDate: pubDate,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) UserID() string {
	return c.userID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) PubDate() time.Time {
	return c.pubDate
}

func (c *Comment) AttachedFiles() []*AttachedFile {
	filesCopy := make([]*AttachedFile, len(c.attachedFiles))
	copy(filesCopy, c.attachedFiles)
	return filesCopy
}

func (c *Comment) HasAttachedFiles() bool {
	return len(c.attachedFiles) > 0
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) SetIssueID(issueID uint) error {
	if c.issueID != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if issueID == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	c.issueID = issueID
	return nil
}

// AttachFiles replaces the attachment list for a reconstructed comment.
func (c *Comment) AttachFiles(files []*AttachedFile) {
	c.attachedFiles = files
}
