// Package dto defines the data transfer objects returned by the issue
// use cases to the HTTP layer.
package dto

import (
	"html/template"
	"time"
)

type AttachedFileDTO struct {
	ID   uint
	Name string
}

type CommentDTO struct {
	ID       uint
	UserID   string
	UserName string
	PubDate  time.Time
	Body     string
	// BodyHTML is sanitized before it is marked safe for templates.
	BodyHTML      template.HTML
	AttachedFiles []AttachedFileDTO
}

type StateDTO struct {
	ID    uint
	Name  string
	Value int
}

type IssueDTO struct {
	ID       uint
	Subject  string
	StateID  uint
	State    StateDTO
	Comments []CommentDTO
}

type IssueListItemDTO struct {
	ID        uint
	Subject   string
	StateID   uint
	StateName string
}
