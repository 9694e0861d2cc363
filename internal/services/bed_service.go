package services

import (
	"context"
	"fmt"

	"homefit/internal/models"
	"homefit/internal/repositories"
)

// BedService handles business logic related to beds.
type BedService struct {
	repo   repositories.BedRepository
	events EventPublisher
	policy OwnershipPolicy
}

// NewBedService creates a new BedService. events may be nil.
func NewBedService(repo repositories.BedRepository, events EventPublisher) *BedService {
	return &BedService{
		repo:   repo,
		events: events,
		policy: BedPolicy,
	}
}

// GetAllBeds retrieves all beds.
func (s *BedService) GetAllBeds(ctx context.Context) ([]models.Bed, error) {
	return s.repo.GetAll(ctx)
}

// GetBedByID retrieves a single bed. A missing bed yields repositories.ErrNotFound.
func (s *BedService) GetBedByID(ctx context.Context, id string) (*models.Bed, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateBed stores a new bed authored by user.
func (s *BedService) CreateBed(ctx context.Context, user models.CurrentUser, fields models.BedFields) (*models.Bed, error) {
	bed := &models.Bed{Author: s.policy.author(user.ID)}
	bed.Apply(fields)
	if err := s.repo.Create(ctx, bed); err != nil {
		return nil, err
	}
	publishRecordEvent(s.events, models.KindBed, models.ActionCreated, bed.ID, user.ID)
	return bed, nil
}

// GetBedForEdit loads a bed and checks that user may edit it.
func (s *BedService) GetBedForEdit(ctx context.Context, user models.CurrentUser, id string) (*models.Bed, error) {
	bed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.mayEdit(user.ID, bed.Author) {
		return bed, ErrNotOwner
	}
	return bed, nil
}

// UpdateBed overwrites the editable fields of a bed previously returned by
// GetBedForEdit. The ownership check is not repeated.
func (s *BedService) UpdateBed(ctx context.Context, user models.CurrentUser, id string, fields models.BedFields) error {
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update bed %s: %w", id, err)
	}
	publishRecordEvent(s.events, models.KindBed, models.ActionUpdated, id, user.ID)
	return nil
}

// DeleteBed removes a bed if user is its author, otherwise returns ErrNotOwner.
func (s *BedService) DeleteBed(ctx context.Context, user models.CurrentUser, id string) error {
	bed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.mayDelete(user.ID, bed.Author) {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bed %s: %w", id, err)
	}
	publishRecordEvent(s.events, models.KindBed, models.ActionDeleted, id, user.ID)
	return nil
}
