package usecases

import (
	"context"

	"zenmai/internal/domain/issue"
	"zenmai/internal/domain/user"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

// passthroughTx runs the function without a real transaction.
type passthroughTx struct {
	calls int
	err   error
}

func (t *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

type mockIssueRepo struct {
	issues     map[uint]*issue.Issue
	nextID     uint
	saveErr    error
	updateErr  error
	saved      []*issue.Issue
	updated    []*issue.Issue
}

func newMockIssueRepo() *mockIssueRepo {
	return &mockIssueRepo{issues: map[uint]*issue.Issue{}, nextID: 1}
}

func (m *mockIssueRepo) Save(_ context.Context, i *issue.Issue) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if err := i.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.issues[i.ID()] = i
	m.saved = append(m.saved, i)
	return nil
}

func (m *mockIssueRepo) Update(_ context.Context, i *issue.Issue) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.issues[i.ID()] = i
	m.updated = append(m.updated, i)
	return nil
}

func (m *mockIssueRepo) GetByID(_ context.Context, issueID uint) (*issue.Issue, error) {
	i, ok := m.issues[issueID]
	if !ok {
		return nil, errors.NewNotFoundError("issue not found")
	}
	return i, nil
}

func (m *mockIssueRepo) List(_ context.Context) ([]*issue.Issue, error) {
	out := make([]*issue.Issue, 0, len(m.issues))
	for id := uint(1); id < m.nextID; id++ {
		if i, ok := m.issues[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

type mockCommentRepo struct {
	saved   []*issue.Comment
	saveErr error
	nextID  uint
}

func (m *mockCommentRepo) Save(_ context.Context, c *issue.Comment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.saved = append(m.saved, c)
	return nil
}

func (m *mockCommentRepo) GetByIssueID(_ context.Context, issueID uint) ([]*issue.Comment, error) {
	var out []*issue.Comment
	for _, c := range m.saved {
		if c.IssueID() == issueID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockStateRepo struct {
	states map[uint]*issue.State
}

func newMockStateRepo() *mockStateRepo {
	open, _ := issue.ReconstructState(1, "Open", issue.StateValueOpen)
	closed, _ := issue.ReconstructState(2, "Closed", issue.StateValueClosed)
	return &mockStateRepo{states: map[uint]*issue.State{1: open, 2: closed}}
}

func (m *mockStateRepo) List(_ context.Context) ([]*issue.State, error) {
	return []*issue.State{m.states[1], m.states[2]}, nil
}

func (m *mockStateRepo) GetByID(_ context.Context, stateID uint) (*issue.State, error) {
	s, ok := m.states[stateID]
	if !ok {
		return nil, errors.NewNotFoundError("state not found")
	}
	return s, nil
}

type mockFileRepo struct {
	files map[uint]*issue.AttachedFile
}

func (m *mockFileRepo) GetByID(_ context.Context, fileID uint) (*issue.AttachedFile, error) {
	f, ok := m.files[fileID]
	if !ok {
		return nil, errors.NewNotFoundError("attached file not found")
	}
	return f, nil
}

type mockUserRepo struct {
	users map[string]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*user.User{}}
}

func (m *mockUserRepo) Save(_ context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, userID string) (*user.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByID(_ context.Context, userID string) (bool, error) {
	_, ok := m.users[userID]
	return ok, nil
}

type noopLogger struct{}

func (m *noopLogger) Debug(msg string, args ...any)                   {}
func (m *noopLogger) Info(msg string, args ...any)                    {}
func (m *noopLogger) Warn(msg string, args ...any)                    {}
func (m *noopLogger) Error(msg string, args ...any)                   {}
func (m *noopLogger) With(args ...any) logger.Interface               { return m }
func (m *noopLogger) Named(name string) logger.Interface              { return m }
func (m *noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newNoopLogger() logger.Interface { return &noopLogger{} }
