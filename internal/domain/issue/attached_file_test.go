package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachedFile(t *testing.T) {
	f, err := NewAttachedFile("report.pdf", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", f.Name())
	assert.Equal(t, []byte{1, 2, 3}, f.Data())
}

func TestNewAttachedFile_SanitizesPath(t *testing.T) {
	f, err := NewAttachedFile("../../etc/passwd", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "passwd", f.Name())

	f, err = NewAttachedFile(`C:\temp\evil file.exe`, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "evil_file.exe", f.Name())
}

func TestNewAttachedFile_UnusableName(t *testing.T) {
	_, err := NewAttachedFile("..", []byte{1})
	assert.Error(t, err)

	_, err = NewAttachedFile("///", []byte{1})
	assert.Error(t, err)
}

func TestNewAttachedFile_EmptyData(t *testing.T) {
	_, err := NewAttachedFile("empty.txt", nil)
	assert.Error(t, err)
}

func TestAttachedFile_SetCommentID(t *testing.T) {
	f, err := NewAttachedFile("file.txt", []byte{1})
	require.NoError(t, err)

	require.NoError(t, f.SetCommentID(3))
	assert.Equal(t, uint(3), f.CommentID())

	assert.Error(t, f.SetCommentID(4))
}
