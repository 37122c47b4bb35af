package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

// MockOwnedRepository is a mock implementation of OwnedRepository for any kind.
type MockOwnedRepository[T any] struct {
	mock.Mock
}

func (m *MockOwnedRepository[T]) List(ctx context.Context, userID uuid.UUID) ([]T, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockOwnedRepository[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOwnedRepository[T]) FindOwned(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOwnedRepository[T]) UpdateOwned(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, id, fields)
	return args.Error(0)
}

func (m *MockOwnedRepository[T]) DeleteOwned(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var _ repository.OwnedRepository[model.Todo] = (*MockOwnedRepository[model.Todo])(nil)

// MockStatsRepository is a mock implementation of StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TodoCounts(ctx context.Context, userID uuid.UUID) (repository.CompletionCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(repository.CompletionCount), args.Error(1)
}

func (m *MockStatsRepository) GoalCounts(ctx context.Context, userID uuid.UUID) (repository.CompletionCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(repository.CompletionCount), args.Error(1)
}

func (m *MockStatsRepository) HabitCounts(ctx context.Context, userID uuid.UUID) (repository.CompletionCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(repository.CompletionCount), args.Error(1)
}

func (m *MockStatsRepository) NoteCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) TodosByCategory(ctx context.Context, userID uuid.UUID) ([]repository.GroupCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GroupCount), args.Error(1)
}

func (m *MockStatsRepository) TodosByPriority(ctx context.Context, userID uuid.UUID) ([]repository.GroupCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GroupCount), args.Error(1)
}
