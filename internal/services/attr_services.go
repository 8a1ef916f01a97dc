package services

import (
	"context"
	"strings"

	"BrLegalAPI/internal/model"
)

// AttrStore is the shared persistence contract for the name-only
// recipe attributes (tags, ingredients). Every operation carries the
// owning user id; the stores never answer across owners.
type AttrStore[T any] interface {
	Create(ctx context.Context, userID int64, name string) (int64, error)
	List(ctx context.Context, userID int64, assignedOnly bool) ([]T, error)
	GetByID(ctx context.Context, userID, id int64) (*T, error)
	UpdateName(ctx context.Context, userID, id int64, name string) error
	Delete(ctx context.Context, userID, id int64) error
}

// AttrService holds the list/create/retrieve/update/delete behavior the
// attribute resources share, parameterized by record type and composed
// by plain delegation.
type AttrService[T any] struct {
	Store AttrStore[T]
}

func NewAttrService[T any](store AttrStore[T]) *AttrService[T] {
	return &AttrService[T]{Store: store}
}

func (s *AttrService[T]) Create(ctx context.Context, userID int64, name string) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	id, err := s.Store.Create(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

func (s *AttrService[T]) List(ctx context.Context, userID int64, assignedOnly bool) ([]T, error) {
	return s.Store.List(ctx, userID, assignedOnly)
}

func (s *AttrService[T]) Get(ctx context.Context, userID, id int64) (*T, error) {
	return s.Store.GetByID(ctx, userID, id)
}

func (s *AttrService[T]) Update(ctx context.Context, userID, id int64, name string) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if err := s.Store.UpdateName(ctx, userID, id, name); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

func (s *AttrService[T]) Delete(ctx context.Context, userID, id int64) error {
	return s.Store.Delete(ctx, userID, id)
}
