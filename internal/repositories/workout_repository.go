package repositories

import (
	"context"

	"homefit/internal/models"
)

// WorkoutRepository defines the interface for workout data access.
type WorkoutRepository interface {
	GetAll(ctx context.Context) ([]models.Workout, error)
	GetByID(ctx context.Context, id string) (*models.Workout, error)
	Create(ctx context.Context, workout *models.Workout) error
	UpdateFields(ctx context.Context, id string, fields models.WorkoutFields) error
	Delete(ctx context.Context, id string) error
}
