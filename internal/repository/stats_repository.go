package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayboard/internal/model"
)

// CompletionCount is the raw total/completed pair for one table.
type CompletionCount struct {
	Total     int64
	Completed int64
}

// GroupCount is one GROUP BY bucket.
type GroupCount struct {
	Key   string
	Count int64
}

// StatsRepository runs read-only aggregate queries scoped to a user.
type StatsRepository interface {
	TodoCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error)
	GoalCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error)
	HabitCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error)
	NoteCount(ctx context.Context, userID uuid.UUID) (int64, error)
	TodosByCategory(ctx context.Context, userID uuid.UUID) ([]GroupCount, error)
	TodosByPriority(ctx context.Context, userID uuid.UUID) ([]GroupCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) completion(ctx context.Context, table interface{}, userID uuid.UUID) (CompletionCount, error) {
	var out CompletionCount
	err := r.db.WithContext(ctx).Model(table).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed").
		Where("user_id = ?", userID).
		Scan(&out).Error
	return out, err
}

func (r *statsRepository) TodoCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error) {
	return r.completion(ctx, &model.Todo{}, userID)
}

func (r *statsRepository) GoalCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error) {
	return r.completion(ctx, &model.Goal{}, userID)
}

func (r *statsRepository) HabitCounts(ctx context.Context, userID uuid.UUID) (CompletionCount, error) {
	return r.completion(ctx, &model.Habit{}, userID)
}

func (r *statsRepository) NoteCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Note{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *statsRepository) groupTodos(ctx context.Context, column string, userID uuid.UUID) ([]GroupCount, error) {
	rows := make([]GroupCount, 0)
	err := r.db.WithContext(ctx).Model(&model.Todo{}).
		Select(column+" AS `key`, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group(column).
		Order("count DESC, `key` ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) TodosByCategory(ctx context.Context, userID uuid.UUID) ([]GroupCount, error) {
	return r.groupTodos(ctx, "category", userID)
}

func (r *statsRepository) TodosByPriority(ctx context.Context, userID uuid.UUID) ([]GroupCount, error) {
	return r.groupTodos(ctx, "priority", userID)
}
