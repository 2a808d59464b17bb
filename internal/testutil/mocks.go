package testutil

import (
	"context"
	"fmt"

	"github.com/stackroast/stackroast/internal/domain/stack"
	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/domain/user"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Users[u.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if u, ok := m.Users[id]; ok {
		delete(m.EmailIndex, u.Email)
		delete(m.Users, id)
	}
	return nil
}

// MockToolRepository is a mock implementation of tool.Repository
type MockToolRepository struct {
	Tools       map[string]*tool.Tool
	NameIndex   map[string]*tool.Tool
	NextID      int64
	CreateError error
	GetError    error
	ListError   error
}

func NewMockToolRepository() *MockToolRepository {
	return &MockToolRepository{
		Tools:     make(map[string]*tool.Tool),
		NameIndex: make(map[string]*tool.Tool),
		NextID:    1,
	}
}

func (m *MockToolRepository) Create(ctx context.Context, t *tool.Tool) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if t.ID == "" {
		t.ID = fmt.Sprintf("tool-%d", m.NextID)
		m.NextID++
	}
	m.Tools[t.ID] = t
	m.NameIndex[t.Name] = t
	return nil
}

func (m *MockToolRepository) GetByID(ctx context.Context, id string) (*tool.Tool, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	t, ok := m.Tools[id]
	if !ok {
		return nil, fmt.Errorf("tool not found")
	}
	return t, nil
}

func (m *MockToolRepository) GetByName(ctx context.Context, name string) (*tool.Tool, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	t, ok := m.NameIndex[name]
	if !ok {
		return nil, fmt.Errorf("tool not found")
	}
	return t, nil
}

func (m *MockToolRepository) List(ctx context.Context, filter tool.Filter) ([]*tool.Tool, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*tool.Tool
	for _, t := range m.Tools {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (m *MockToolRepository) ListByIDs(ctx context.Context, ids []string) ([]*tool.Tool, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*tool.Tool
	for _, id := range ids {
		if t, ok := m.Tools[id]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *MockToolRepository) Update(ctx context.Context, t *tool.Tool) error {
	if _, ok := m.Tools[t.ID]; !ok {
		return fmt.Errorf("tool not found")
	}
	m.Tools[t.ID] = t
	m.NameIndex[t.Name] = t
	return nil
}

func (m *MockToolRepository) Delete(ctx context.Context, id string) error {
	if t, ok := m.Tools[id]; ok {
		delete(m.NameIndex, t.Name)
		delete(m.Tools, id)
	}
	return nil
}

// MockStackRepository is a mock implementation of stack.Repository
type MockStackRepository struct {
	Stacks      map[string]*stack.Stack
	Scores      []*stack.ScoreRecord
	NextScoreID int64
	CreateError error
	GetError    error
	ScoreError  error
}

func NewMockStackRepository() *MockStackRepository {
	return &MockStackRepository{
		Stacks:      make(map[string]*stack.Stack),
		NextScoreID: 1,
	}
}

func (m *MockStackRepository) Create(ctx context.Context, s *stack.Stack) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Stacks[s.ID] = s
	return nil
}

func (m *MockStackRepository) GetByID(ctx context.Context, id string) (*stack.Stack, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.Stacks[id]
	if !ok {
		return nil, fmt.Errorf("stack not found")
	}
	return s, nil
}

func (m *MockStackRepository) List(ctx context.Context, filter stack.Filter) ([]*stack.Stack, error) {
	var result []*stack.Stack
	for _, s := range m.Stacks {
		if filter.UserID != 0 && s.UserID != filter.UserID {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *MockStackRepository) Update(ctx context.Context, s *stack.Stack) error {
	if _, ok := m.Stacks[s.ID]; !ok {
		return fmt.Errorf("stack not found")
	}
	m.Stacks[s.ID] = s
	return nil
}

func (m *MockStackRepository) Delete(ctx context.Context, id string) error {
	delete(m.Stacks, id)
	return nil
}

func (m *MockStackRepository) RecordScore(ctx context.Context, rec *stack.ScoreRecord) error {
	if m.ScoreError != nil {
		return m.ScoreError
	}
	rec.ID = m.NextScoreID
	m.NextScoreID++
	m.Scores = append(m.Scores, rec)
	return nil
}

func (m *MockStackRepository) ListScores(ctx context.Context, stackID string, limit int) ([]*stack.ScoreRecord, error) {
	var result []*stack.ScoreRecord
	for i := len(m.Scores) - 1; i >= 0; i-- {
		if m.Scores[i].StackID != stackID {
			continue
		}
		result = append(result, m.Scores[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *MockStackRepository) AllOverallScores(ctx context.Context) ([]int, error) {
	var result []int
	for _, rec := range m.Scores {
		result = append(result, rec.Overall)
	}
	return result, nil
}
