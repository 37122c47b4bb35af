package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "dayboard/internal/errors"
	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// StatsService computes the dashboard summary. Each count is its own query,
// so a report may interleave with concurrent writes.
type StatsService interface {
	Compute(ctx context.Context, userID uuid.UUID) (*model.StatsReport, error)
}

type statsService struct {
	repo repository.StatsRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Compute(ctx context.Context, userID uuid.UUID) (*model.StatsReport, error) {
	todos, err := s.repo.TodoCounts(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("count todos", err)
	}
	goals, err := s.repo.GoalCounts(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("count goals", err)
	}
	habits, err := s.repo.HabitCounts(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("count habits", err)
	}
	notes, err := s.repo.NoteCount(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("count notes", err)
	}
	byCategory, err := s.repo.TodosByCategory(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("group todos by category", err)
	}
	byPriority, err := s.repo.TodosByPriority(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("group todos by priority", err)
	}

	report := &model.StatsReport{
		Todos:             completion(todos),
		Goals:             completion(goals),
		Habits:            completion(habits),
		Notes:             model.CountStats{Total: notes},
		CategoryBreakdown: make([]model.CategoryCount, 0, len(byCategory)),
		PriorityBreakdown: make([]model.PriorityCount, 0, len(byPriority)),
	}
	for _, g := range byCategory {
		report.CategoryBreakdown = append(report.CategoryBreakdown, model.CategoryCount{Category: model.Category(g.Key), Count: g.Count})
	}
	for _, g := range byPriority {
		report.PriorityBreakdown = append(report.PriorityBreakdown, model.PriorityCount{Priority: model.Priority(g.Key), Count: g.Count})
	}
	return report, nil
}

func completion(c repository.CompletionCount) model.CompletionStats {
	return model.CompletionStats{
		Total:          c.Total,
		Completed:      c.Completed,
		CompletionRate: CompletionRate(c.Completed, c.Total),
	}
}

// CompletionRate is completed/total as a whole percent, rounded half away
// from zero. It is 0 when total is 0.
func CompletionRate(completed, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(completed).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart()
}
