package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"zenmai/internal/domain/issue"
	"zenmai/internal/domain/user"
	"zenmai/internal/infrastructure/persistence/models"
	"zenmai/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.UserModel{},
		&models.StateModel{},
		&models.IssueModel{},
		&models.CommentModel{},
		&models.AttachedFileModel{},
	)
	require.NoError(t, err)

	// the initial migration seeds these
	require.NoError(t, gdb.Create(&models.StateModel{Name: "Open", Value: issue.StateValueOpen}).Error)
	require.NoError(t, gdb.Create(&models.StateModel{Name: "Closed", Value: issue.StateValueClosed}).Error)

	return gdb
}

func newTestIssue(t *testing.T, subject, userID, body string, files []*issue.AttachedFile) *issue.Issue {
	t.Helper()

	i, err := issue.NewIssue(subject, 1)
	require.NoError(t, err)

	c, err := issue.NewComment(0, userID, body, time.Time{}, files)
	require.NoError(t, err)
	require.NoError(t, i.AddComment(c))

	return i
}

func TestIssueRepository_SaveAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	file, err := issue.NewAttachedFile("trace.log", []byte("stack"))
	require.NoError(t, err)

	saved := newTestIssue(t, "login fails", "alice", "cannot log in", []*issue.AttachedFile{file})
	require.NoError(t, repo.Save(ctx, saved))
	assert.NotZero(t, saved.ID())

	found, err := repo.GetByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, "login fails", found.Subject())
	assert.Equal(t, uint(1), found.StateID())

	comments := found.Comments()
	require.Len(t, comments, 1)
	assert.Equal(t, "alice", comments[0].UserID())
	assert.Equal(t, "cannot log in", comments[0].Body())

	attached := comments[0].AttachedFiles()
	require.Len(t, attached, 1)
	assert.Equal(t, "trace.log", attached[0].Name())
	assert.Equal(t, []byte("stack"), attached[0].Data())
}

func TestIssueRepository_GetByID_NotFound(t *testing.T) {
	repo := NewIssueRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestIssueRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	saved := newTestIssue(t, "old subject", "alice", "body", nil)
	require.NoError(t, repo.Save(ctx, saved))

	require.NoError(t, saved.UpdateSubject("new subject"))
	require.NoError(t, saved.ChangeState(2))
	require.NoError(t, repo.Update(ctx, saved))

	found, err := repo.GetByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, "new subject", found.Subject())
	assert.Equal(t, uint(2), found.StateID())
}

func TestIssueRepository_List_OrderedByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	first := newTestIssue(t, "first", "alice", "a", nil)
	second := newTestIssue(t, "second", "bob", "b", nil)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	issues, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "first", issues[0].Subject())
	assert.Equal(t, "second", issues[1].Subject())
}

func TestCommentRepository_SaveOrdersByPubDate(t *testing.T) {
	gdb := setupTestDB(t)
	issueRepo := NewIssueRepository(gdb)
	commentRepo := NewCommentRepository(gdb)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	saved, err := issue.NewIssue("subject", 1)
	require.NoError(t, err)
	firstComment, err := issue.NewComment(0, "alice", "first", base, nil)
	require.NoError(t, err)
	require.NoError(t, saved.AddComment(firstComment))
	require.NoError(t, issueRepo.Save(ctx, saved))

	later, err := issue.NewComment(saved.ID(), "bob", "third", base.Add(2*time.Hour), nil)
	require.NoError(t, err)
	earlier, err := issue.NewComment(saved.ID(), "bob", "second", base.Add(time.Hour), nil)
	require.NoError(t, err)

	// insert out of order; reads must sort by publication time
	require.NoError(t, commentRepo.Save(ctx, later))
	require.NoError(t, commentRepo.Save(ctx, earlier))

	comments, err := commentRepo.GetByIssueID(ctx, saved.ID())
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Body())
	assert.Equal(t, "second", comments[1].Body())
	assert.Equal(t, "third", comments[2].Body())
}

func TestStateRepository_List_OrderedByValue(t *testing.T) {
	repo := NewStateRepository(setupTestDB(t))

	states, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "Open", states[0].Name())
	assert.Equal(t, "Closed", states[1].Name())
}

func TestAttachedFileRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	issueRepo := NewIssueRepository(gdb)
	fileRepo := NewAttachedFileRepository(gdb)
	ctx := context.Background()

	file, err := issue.NewAttachedFile("data.bin", []byte{1, 2, 3})
	require.NoError(t, err)

	saved := newTestIssue(t, "subject", "alice", "body", []*issue.AttachedFile{file})
	require.NoError(t, issueRepo.Save(ctx, saved))
	require.NotZero(t, file.ID())

	found, err := fileRepo.GetByID(ctx, file.ID())
	require.NoError(t, err)
	assert.Equal(t, "data.bin", found.Name())
	assert.Equal(t, []byte{1, 2, 3}, found.Data())

	_, err = fileRepo.GetByID(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("alice", "Alice", "hashed")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, "hashed", found.HashedPassword())

	exists, err := repo.ExistsByID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Save_Duplicate(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := user.NewUser("alice", "Alice", "h1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := user.NewUser("alice", "Other Alice", "h2")
	require.NoError(t, err)

	err = repo.Save(ctx, second)
	require.True(t, errors.IsValidationError(err))
	assert.Equal(t, "id 'alice' is already exists.", errors.GetAppError(err).Message)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("alice", "Alice", "h1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, u.Rename("Alice B."))
	require.NoError(t, u.ChangePassword("h2"))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", found.Name())
	assert.Equal(t, "h2", found.HashedPassword())
}
