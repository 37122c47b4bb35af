package service

import (
	"context"

	"github.com/google/uuid"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// HabitService manages a user's habits. Streak fields are never written here.
type HabitService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Habit, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*model.Habit, error)
	Update(ctx context.Context, userID uuid.UUID, id string, patch HabitPatch) (*model.Habit, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type habitService struct {
	store ownedStore[model.Habit]
}

// NewHabitService creates a new habit service.
func NewHabitService(repo repository.OwnedRepository[model.Habit]) HabitService {
	return &habitService{store: newOwnedStore(repo, "habit")}
}

func (s *habitService) List(ctx context.Context, userID uuid.UUID) ([]model.Habit, error) {
	return s.store.list(ctx, userID)
}

func (s *habitService) Create(ctx context.Context, userID uuid.UUID, name string) (*model.Habit, error) {
	name, err := requiredName(name, "habit name")
	if err != nil {
		return nil, err
	}
	return s.store.create(ctx, &model.Habit{UserID: userID, Name: name})
}

func (s *habitService) Update(ctx context.Context, userID uuid.UUID, id string, patch HabitPatch) (*model.Habit, error) {
	habitID, err := s.store.parseID(id)
	if err != nil {
		return nil, err
	}
	fields, err := validateHabitPatch(patch)
	if err != nil {
		return nil, err
	}
	return s.store.update(ctx, userID, habitID, fields)
}

func (s *habitService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return s.store.delete(ctx, userID, id)
}
