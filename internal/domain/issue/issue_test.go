package issue

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssue(t *testing.T) {
	i, err := NewIssue("broken login page", 1)
	require.NoError(t, err)
	assert.Equal(t, uint(0), i.ID())
	assert.Equal(t, "broken login page", i.Subject())
	assert.Equal(t, uint(1), i.StateID())
	assert.Empty(t, i.Comments())
}

func TestNewIssue_EmptySubject(t *testing.T) {
	_, err := NewIssue("", 1)
	assert.Error(t, err)
}

func TestNewIssue_SubjectTooLong(t *testing.T) {
	_, err := NewIssue(strings.Repeat("a", 257), 1)
	assert.Error(t, err)
}

func TestNewIssue_ZeroState(t *testing.T) {
	_, err := NewIssue("subject", 0)
	assert.Error(t, err)
}

func TestIssue_SetID(t *testing.T) {
	i, err := NewIssue("subject", 1)
	require.NoError(t, err)

	require.NoError(t, i.SetID(42))
	assert.Equal(t, uint(42), i.ID())

	assert.Error(t, i.SetID(43), "ID must be settable only once")
}

func TestIssue_UpdateSubject(t *testing.T) {
	i, err := NewIssue("old subject", 1)
	require.NoError(t, err)

	require.NoError(t, i.UpdateSubject("new subject"))
	assert.Equal(t, "new subject", i.Subject())

	assert.Error(t, i.UpdateSubject(""))
}

func TestIssue_ChangeState(t *testing.T) {
	i, err := NewIssue("subject", 1)
	require.NoError(t, err)

	require.NoError(t, i.ChangeState(2))
	assert.Equal(t, uint(2), i.StateID())

	assert.Error(t, i.ChangeState(0))
}

func TestIssue_AddComment(t *testing.T) {
	i, err := NewIssue("subject", 1)
	require.NoError(t, err)

	c, err := NewComment(0, "alice", "first comment", time.Time{}, nil)
	require.NoError(t, err)

	require.NoError(t, i.AddComment(c))
	assert.Len(t, i.Comments(), 1)
}

func TestIssue_AddComment_Nil(t *testing.T) {
	i, err := NewIssue("subject", 1)
	require.NoError(t, err)

	assert.Error(t, i.AddComment(nil))
}

func TestIssue_AddComment_IssueIDMismatch(t *testing.T) {
	i, err := ReconstructIssue(1, "subject", 1)
	require.NoError(t, err)

	c, err := NewComment(2, "alice", "body", time.Time{}, nil)
	require.NoError(t, err)

	assert.Error(t, i.AddComment(c))
}
