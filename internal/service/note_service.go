package service

import (
	"context"

	"github.com/google/uuid"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

// NoteService manages a user's notes. Notes have no update operation.
type NoteService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Note, error)
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Note, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type noteService struct {
	store ownedStore[model.Note]
}

// NewNoteService creates a new note service.
func NewNoteService(repo repository.OwnedRepository[model.Note]) NoteService {
	return &noteService{store: newOwnedStore(repo, "note")}
}

func (s *noteService) List(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	return s.store.list(ctx, userID)
}

func (s *noteService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Note, error) {
	text, err := requiredText(text, "note text")
	if err != nil {
		return nil, err
	}
	return s.store.create(ctx, &model.Note{UserID: userID, Text: text})
}

func (s *noteService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return s.store.delete(ctx, userID, id)
}
