package services

import (
	"context"
	"fmt"

	"homefit/internal/models"
	"homefit/internal/repositories"
)

// WorkoutService handles business logic related to workouts.
type WorkoutService struct {
	repo   repositories.WorkoutRepository
	events EventPublisher
	policy OwnershipPolicy
}

// NewWorkoutService creates a new WorkoutService governed by policy
// (normally WorkoutPolicy). events may be nil.
func NewWorkoutService(repo repositories.WorkoutRepository, events EventPublisher, policy OwnershipPolicy) *WorkoutService {
	return &WorkoutService{
		repo:   repo,
		events: events,
		policy: policy,
	}
}

func (s *WorkoutService) GetAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.repo.GetAll(ctx)
}

func (s *WorkoutService) GetWorkoutByID(ctx context.Context, id string) (*models.Workout, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateWorkout stores a new workout. The author is only recorded when the
// policy asks for it.
func (s *WorkoutService) CreateWorkout(ctx context.Context, user models.CurrentUser, fields models.WorkoutFields) (*models.Workout, error) {
	workout := &models.Workout{Author: s.policy.author(user.ID)}
	workout.Apply(fields)
	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}
	publishRecordEvent(s.events, models.KindWorkout, models.ActionCreated, workout.ID, user.ID)
	return workout, nil
}

// GetWorkoutForEdit loads a workout and applies the edit ownership rule.
func (s *WorkoutService) GetWorkoutForEdit(ctx context.Context, user models.CurrentUser, id string) (*models.Workout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.mayEdit(user.ID, workout.Author) {
		return workout, ErrNotOwner
	}
	return workout, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, user models.CurrentUser, id string, fields models.WorkoutFields) error {
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update workout %s: %w", id, err)
	}
	publishRecordEvent(s.events, models.KindWorkout, models.ActionUpdated, id, user.ID)
	return nil
}

// DeleteWorkout removes a workout. Under WorkoutPolicy any signed-in user may
// delete any workout.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, user models.CurrentUser, id string) error {
	workout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.mayDelete(user.ID, workout.Author) {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workout %s: %w", id, err)
	}
	publishRecordEvent(s.events, models.KindWorkout, models.ActionDeleted, id, user.ID)
	return nil
}
