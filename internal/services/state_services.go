package services

import (
	"context"
	"strings"

	"BrLegalAPI/internal/model"
)

type StateStore interface {
	Create(ctx context.Context, userID int64, name, initials string) (int64, error)
	List(ctx context.Context, userID int64) ([]model.State, error)
	GetByID(ctx context.Context, userID, id int64) (*model.State, error)
	Update(ctx context.Context, userID, id int64, name, initials *string) error
	Delete(ctx context.Context, userID, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type StateService struct {
	Store StateStore
}

func NewStateService(store StateStore) *StateService {
	return &StateService{Store: store}
}

func validateInitials(initials string) error {
	if len(initials) != 2 {
		return model.Validation("initials must be exactly 2 characters")
	}
	return nil
}

func (s *StateService) Create(ctx context.Context, userID int64, name, initials string) (*model.State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	initials = strings.ToUpper(strings.TrimSpace(initials))
	if err := validateInitials(initials); err != nil {
		return nil, err
	}
	exists, err := s.Store.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrNameExists
	}
	id, err := s.Store.Create(ctx, userID, name, initials)
	if err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

func (s *StateService) List(ctx context.Context, userID int64) ([]model.State, error) {
	return s.Store.List(ctx, userID)
}

func (s *StateService) Get(ctx context.Context, userID, id int64) (*model.State, error) {
	return s.Store.GetByID(ctx, userID, id)
}

func (s *StateService) Update(ctx context.Context, userID, id int64, name, initials *string) (*model.State, error) {
	if name == nil && initials == nil {
		return nil, model.ErrNothingToUpdate
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, model.ErrNameRequired
		}
		name = &trimmed
	}
	if initials != nil {
		upper := strings.ToUpper(strings.TrimSpace(*initials))
		if err := validateInitials(upper); err != nil {
			return nil, err
		}
		initials = &upper
	}
	if err := s.Store.Update(ctx, userID, id, name, initials); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

// Delete removes the state together with its court districts.
func (s *StateService) Delete(ctx context.Context, userID, id int64) error {
	return s.Store.Delete(ctx, userID, id)
}
