package models

import "time"

type IssueModel struct {
	ID      uint   `gorm:"primaryKey"`
	Subject string `gorm:"size:256;not null"`
	StateID uint   `gorm:"not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}

type CommentModel struct {
	ID      uint      `gorm:"primaryKey"`
	IssueID uint      `gorm:"not null;index"`
	UserID  string    `gorm:"size:32;not null;index"`
	PubDate time.Time `gorm:"not null;index"`
	Body    string    `gorm:"type:text"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type AttachedFileModel struct {
	ID        uint   `gorm:"primaryKey"`
	CommentID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:256;not null"`
	Data      []byte `gorm:"type:blob"`
}

func (AttachedFileModel) TableName() string {
	return "attached_files"
}

type StateModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value int    `gorm:"uniqueIndex;not null"`
}

func (StateModel) TableName() string {
	return "states"
}
