package service

import (
	"context"

	"github.com/google/uuid"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// TodoService manages a user's todos.
type TodoService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Todo, error)
	Create(ctx context.Context, userID uuid.UUID, in NewTodo) (*model.Todo, error)
	Update(ctx context.Context, userID uuid.UUID, id string, patch TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type todoService struct {
	store ownedStore[model.Todo]
}

// NewTodoService creates a new todo service.
func NewTodoService(repo repository.OwnedRepository[model.Todo]) TodoService {
	return &todoService{store: newOwnedStore(repo, "todo")}
}

// List returns todos ordered by due date, earliest first.
func (s *todoService) List(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	return s.store.list(ctx, userID)
}

func (s *todoService) Create(ctx context.Context, userID uuid.UUID, in NewTodo) (*model.Todo, error) {
	todo, err := validateNewTodo(userID, in)
	if err != nil {
		return nil, err
	}
	return s.store.create(ctx, todo)
}

// Update validates the id and the patch before touching the store.
func (s *todoService) Update(ctx context.Context, userID uuid.UUID, id string, patch TodoPatch) (*model.Todo, error) {
	todoID, err := s.store.parseID(id)
	if err != nil {
		return nil, err
	}
	fields, err := validateTodoPatch(patch)
	if err != nil {
		return nil, err
	}
	return s.store.update(ctx, userID, todoID, fields)
}

func (s *todoService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return s.store.delete(ctx, userID, id)
}
