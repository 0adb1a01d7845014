package issue

import (
	"fmt"

	"zenmai/internal/shared/utils"
)

type AttachedFile struct {
	id        uint
	commentID uint
	name      string
	data      []byte
}

// NewAttachedFile creates an attachment from an uploaded file. The name is
// sanitized to its base component so path fragments never reach storage.
func NewAttachedFile(name string, data []byte) (*AttachedFile, error) {
	sanitized := utils.SanitizeFilename(name)
	if len(sanitized) == 0 {
		return nil, fmt.Errorf("file name %q is not usable after sanitization", name)
	}
	if len(sanitized) > 256 {
		return nil, fmt.Errorf("file name exceeds maximum length of 256 characters")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file data cannot be empty")
	}

	return &AttachedFile{
		name: sanitized,
		data: data,
	}, nil
}

func ReconstructAttachedFile(id uint, commentID uint, name string, data []byte) (*AttachedFile, error) {
	if id == 0 {
		return nil, fmt.Errorf("attached file ID cannot be zero")
	}
	if commentID == 0 {
		return nil, fmt.Errorf("comment ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("file name is required")
	}

	return &AttachedFile{
		id:        id,
		commentID: commentID,
		name:      name,
		data:      data,
	}, nil
}

func (f *AttachedFile) ID() uint {
	return f.id
}

func (f *AttachedFile) CommentID() uint {
	return f.commentID
}

func (f *AttachedFile) Name() string {
	return f.name
}

func (f *AttachedFile) Data() []byte {
	return f.data
}

func (f *AttachedFile) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("attached file ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attached file ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *AttachedFile) SetCommentID(commentID uint) error {
	if f.commentID != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if commentID == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	f.commentID = commentID
	return nil
}
