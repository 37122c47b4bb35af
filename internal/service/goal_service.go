package service

import (
	"context"

	"github.com/google/uuid"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// GoalService manages a user's goals.
type GoalService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Goal, error)
	Update(ctx context.Context, userID uuid.UUID, id string, patch GoalPatch) (*model.Goal, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type goalService struct {
	store ownedStore[model.Goal]
}

// NewGoalService creates a new goal service.
func NewGoalService(repo repository.OwnedRepository[model.Goal]) GoalService {
	return &goalService{store: newOwnedStore(repo, "goal")}
}

func (s *goalService) List(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	return s.store.list(ctx, userID)
}

func (s *goalService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Goal, error) {
	text, err := requiredText(text, "goal text")
	if err != nil {
		return nil, err
	}
	return s.store.create(ctx, &model.Goal{UserID: userID, Text: text})
}

func (s *goalService) Update(ctx context.Context, userID uuid.UUID, id string, patch GoalPatch) (*model.Goal, error) {
	goalID, err := s.store.parseID(id)
	if err != nil {
		return nil, err
	}
	fields, err := validateGoalPatch(patch)
	if err != nil {
		return nil, err
	}
	return s.store.update(ctx, userID, goalID, fields)
}

func (s *goalService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return s.store.delete(ctx, userID, id)
}
