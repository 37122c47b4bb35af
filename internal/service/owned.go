package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "dayboard/internal/errors"
	"dayboard/internal/repository"
)

// ownedStore is the shared authorization-and-lookup path for every resource
// kind. Ids are parsed before any query, and a record that is absent or owned
// by someone else surfaces as the same NotFound error.
type ownedStore[T any] struct {
	repo repository.OwnedRepository[T]
	kind string
}

func newOwnedStore[T any](repo repository.OwnedRepository[T], kind string) ownedStore[T] {
	return ownedStore[T]{repo: repo, kind: kind}
}

func (s ownedStore[T]) parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + s.kind + " id")
	}
	return id, nil
}

func (s ownedStore[T]) notFound() error {
	return apperrors.NotFound(s.kind + " not found")
}

func (s ownedStore[T]) list(ctx context.Context, userID uuid.UUID) ([]T, error) {
	records, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("list "+s.kind+"s", err)
	}
	return records, nil
}

func (s ownedStore[T]) create(ctx context.Context, record *T) (*T, error) {
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperrors.Internal("create "+s.kind, err)
	}
	return record, nil
}

func (s ownedStore[T]) find(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	record, err := s.repo.FindOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		return nil, apperrors.Internal("find "+s.kind, err)
	}
	return record, nil
}

// update merges fields into the owned record and returns the stored result.
func (s ownedStore[T]) update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	current, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := s.repo.UpdateOwned(ctx, userID, id, fields); err != nil {
		return nil, apperrors.Internal("update "+s.kind, err)
	}
	return s.find(ctx, userID, id)
}

func (s ownedStore[T]) delete(ctx context.Context, userID uuid.UUID, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteOwned(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.notFound()
		}
		return apperrors.Internal("delete "+s.kind, err)
	}
	return nil
}
