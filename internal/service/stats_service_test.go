package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "dayboard/internal/errors"
	"dayboard/internal/model"
	"dayboard/internal/repository"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total, want int64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 200, 1},
		{1, 201, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompletionRate(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestStatsService_Compute(t *testing.T) {
	userID := uuid.New()

	t.Run("full report", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		mockRepo.On("TodoCounts", mock.Anything, userID).Return(repository.CompletionCount{Total: 3, Completed: 1}, nil)
		mockRepo.On("GoalCounts", mock.Anything, userID).Return(repository.CompletionCount{Total: 2, Completed: 2}, nil)
		mockRepo.On("HabitCounts", mock.Anything, userID).Return(repository.CompletionCount{}, nil)
		mockRepo.On("NoteCount", mock.Anything, userID).Return(int64(4), nil)
		mockRepo.On("TodosByCategory", mock.Anything, userID).Return([]repository.GroupCount{{Key: "Work", Count: 2}, {Key: "Study", Count: 1}}, nil)
		mockRepo.On("TodosByPriority", mock.Anything, userID).Return([]repository.GroupCount{{Key: "High", Count: 3}}, nil)

		report, err := NewStatsService(mockRepo).Compute(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, model.CompletionStats{Total: 3, Completed: 1, CompletionRate: 33}, report.Todos)
		assert.Equal(t, int64(100), report.Goals.CompletionRate)
		assert.Equal(t, model.CompletionStats{}, report.Habits)
		assert.Equal(t, int64(4), report.Notes.Total)
		assert.Equal(t, []model.CategoryCount{{Category: model.CategoryWork, Count: 2}, {Category: model.CategoryStudy, Count: 1}}, report.CategoryBreakdown)
		assert.Equal(t, []model.PriorityCount{{Priority: model.PriorityHigh, Count: 3}}, report.PriorityBreakdown)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty user gets empty breakdowns", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		mockRepo.On("TodoCounts", mock.Anything, userID).Return(repository.CompletionCount{}, nil)
		mockRepo.On("GoalCounts", mock.Anything, userID).Return(repository.CompletionCount{}, nil)
		mockRepo.On("HabitCounts", mock.Anything, userID).Return(repository.CompletionCount{}, nil)
		mockRepo.On("NoteCount", mock.Anything, userID).Return(int64(0), nil)
		mockRepo.On("TodosByCategory", mock.Anything, userID).Return(nil, nil)
		mockRepo.On("TodosByPriority", mock.Anything, userID).Return(nil, nil)

		report, err := NewStatsService(mockRepo).Compute(context.Background(), userID)

		require.NoError(t, err)
		assert.NotNil(t, report.CategoryBreakdown)
		assert.Empty(t, report.CategoryBreakdown)
		assert.NotNil(t, report.PriorityBreakdown)
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo := new(MockStatsRepository)
		mockRepo.On("TodoCounts", mock.Anything, userID).Return(repository.CompletionCount{}, errors.New("db down"))

		_, err := NewStatsService(mockRepo).Compute(context.Background(), userID)

		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}
