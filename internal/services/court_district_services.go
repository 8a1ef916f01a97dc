package services

import (
	"context"
	"strings"

	"BrLegalAPI/internal/model"
)

type CourtDistrictStore interface {
	Create(ctx context.Context, userID int64, name string, stateID int64) (int64, error)
	List(ctx context.Context, userID int64, stateIDs []int64) ([]model.CourtDistrict, error)
	GetByID(ctx context.Context, userID, id int64) (*model.CourtDistrict, error)
	Update(ctx context.Context, userID, id int64, name *string, stateID *int64) error
	Delete(ctx context.Context, userID, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CourtDistrictService struct {
	Store  CourtDistrictStore
	States StateStore // referenced state must exist and belong to the caller
}

func NewCourtDistrictService(store CourtDistrictStore, states StateStore) *CourtDistrictService {
	return &CourtDistrictService{Store: store, States: states}
}

func (s *CourtDistrictService) checkState(ctx context.Context, userID, stateID int64) error {
	if stateID == 0 {
		return model.ErrStateRequired
	}
	if _, err := s.States.GetByID(ctx, userID, stateID); err != nil {
		return model.Validation("state not found")
	}
	return nil
}

func (s *CourtDistrictService) Create(ctx context.Context, userID int64, name string, stateID int64) (*model.CourtDistrict, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if err := s.checkState(ctx, userID, stateID); err != nil {
		return nil, err
	}
	exists, err := s.Store.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrNameExists
	}
	id, err := s.Store.Create(ctx, userID, name, stateID)
	if err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

// List filters by the optional state membership set on top of the
// owner condition.
func (s *CourtDistrictService) List(ctx context.Context, userID int64, stateIDs []int64) ([]model.CourtDistrict, error) {
	return s.Store.List(ctx, userID, stateIDs)
}

func (s *CourtDistrictService) Get(ctx context.Context, userID, id int64) (*model.CourtDistrict, error) {
	return s.Store.GetByID(ctx, userID, id)
}

func (s *CourtDistrictService) Update(ctx context.Context, userID, id int64, name *string, stateID *int64) (*model.CourtDistrict, error) {
	if name == nil && stateID == nil {
		return nil, model.ErrNothingToUpdate
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, model.ErrNameRequired
		}
		name = &trimmed
	}
	if stateID != nil {
		if err := s.checkState(ctx, userID, *stateID); err != nil {
			return nil, err
		}
	}
	if err := s.Store.Update(ctx, userID, id, name, stateID); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

func (s *CourtDistrictService) Delete(ctx context.Context, userID, id int64) error {
	return s.Store.Delete(ctx, userID, id)
}
