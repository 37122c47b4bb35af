package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayboard/internal/model"
)

// OwnedRepository persists records that belong to exactly one user. Every
// query is filtered by user_id, so another user's record is indistinguishable
// from a missing one: both yield gorm.ErrRecordNotFound.
type OwnedRepository[T any] interface {
	List(ctx context.Context, userID uuid.UUID) ([]T, error)
	Create(ctx context.Context, record *T) error
	FindOwned(ctx context.Context, userID, id uuid.UUID) (*T, error)
	UpdateOwned(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	DeleteOwned(ctx context.Context, userID, id uuid.UUID) error
}

type ownedRepository[T any] struct {
	db    *gorm.DB
	order string
}

// NewTodoRepository lists todos by due date, earliest first.
func NewTodoRepository(db *gorm.DB) OwnedRepository[model.Todo] {
	return &ownedRepository[model.Todo]{db: db, order: "due_date ASC, created_at ASC"}
}

// NewGoalRepository lists goals newest first.
func NewGoalRepository(db *gorm.DB) OwnedRepository[model.Goal] {
	return &ownedRepository[model.Goal]{db: db, order: "created_at DESC"}
}

// NewNoteRepository lists notes newest first.
func NewNoteRepository(db *gorm.DB) OwnedRepository[model.Note] {
	return &ownedRepository[model.Note]{db: db, order: "created_at DESC"}
}

// NewHabitRepository lists habits in storage order.
func NewHabitRepository(db *gorm.DB) OwnedRepository[model.Habit] {
	return &ownedRepository[model.Habit]{db: db}
}

func (r *ownedRepository[T]) List(ctx context.Context, userID uuid.UUID) ([]T, error) {
	records := make([]T, 0)
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ownedRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ownedRepository[T]) FindOwned(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateOwned applies fields in a single UPDATE. Callers look the record up
// first: MySQL reports zero affected rows for a no-op update, so RowsAffected
// cannot tell "absent" from "unchanged".
func (r *ownedRepository[T]) UpdateOwned(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (r *ownedRepository[T]) DeleteOwned(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
