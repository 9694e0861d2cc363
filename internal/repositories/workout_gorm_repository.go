package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homefit/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWorkoutRepository is a GORM implementation of WorkoutRepository.
type GORMWorkoutRepository struct {
	db *gorm.DB
}

// NewGORMWorkoutRepository creates a new instance of GORMWorkoutRepository.
func NewGORMWorkoutRepository(db *gorm.DB) *GORMWorkoutRepository {
	return &GORMWorkoutRepository{db: db}
}

// GetAll retrieves all workouts in the table's natural order.
func (r *GORMWorkoutRepository) GetAll(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := r.db.WithContext(ctx).Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all workouts: %w", err)
	}
	return workouts, nil
}

// GetByID retrieves a single workout by its ID.
func (r *GORMWorkoutRepository) GetByID(ctx context.Context, id string) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get workout by ID %s: %w", id, err)
	}
	return &workout, nil
}

// Create inserts a new workout, assigning an ID if it has none.
func (r *GORMWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// UpdateFields sets the editable columns of one workout.
func (r *GORMWorkoutRepository) UpdateFields(ctx context.Context, id string, fields models.WorkoutFields) error {
	res := r.db.WithContext(ctx).Model(&models.Workout{}).Where("id = ?", id).Updates(map[string]interface{}{
		"excercise":  fields.Excercise,
		"weight":     fields.Weight,
		"sets":       fields.Sets,
		"reps":       fields.Reps,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update workout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a workout by its ID.
func (r *GORMWorkoutRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Workout{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
