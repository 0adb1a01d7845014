package issue

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	pubDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	c, err := NewComment(1, "alice", "it fails on submit", pubDate, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.IssueID())
	assert.Equal(t, "alice", c.UserID())
	assert.Equal(t, "it fails on submit", c.Body())
	assert.Equal(t, pubDate, c.PubDate())
	assert.False(t, c.HasAttachedFiles())
}

func TestNewComment_ZeroPubDateDefaultsToNow(t *testing.T) {
	before := time.Now().UTC()
	c, err := NewComment(1, "alice", "body", time.Time{}, nil)
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.False(t, c.PubDate().Before(before))
	assert.False(t, c.PubDate().After(after))
}

func TestNewComment_EmptyUserID(t *testing.T) {
	_, err := NewComment(1, "", "body", time.Time{}, nil)
	assert.Error(t, err)
}

func TestNewComment_EmptyBodyAllowed(t *testing.T) {
	_, err := NewComment(1, "alice", "", time.Time{}, nil)
	assert.NoError(t, err)
}

func TestNewComment_BodyTooLong(t *testing.T) {
	_, err := NewComment(1, "alice", strings.Repeat("a", 5001), time.Time{}, nil)
	assert.Error(t, err)
}

func TestNewComment_UnboundIssueID(t *testing.T) {
	c, err := NewComment(0, "alice", "body", time.Time{}, nil)
	require.NoError(t, err)

	require.NoError(t, c.SetIssueID(7))
	assert.Equal(t, uint(7), c.IssueID())

	assert.Error(t, c.SetIssueID(8), "issue ID must be settable only once")
}

func TestNewComment_WithAttachedFiles(t *testing.T) {
	f, err := NewAttachedFile("log.txt", []byte("content"))
	require.NoError(t, err)

	c, err := NewComment(1, "alice", "see attachment", time.Time{}, []*AttachedFile{f})
	require.NoError(t, err)
	assert.True(t, c.HasAttachedFiles())
	assert.Len(t, c.AttachedFiles(), 1)
}
