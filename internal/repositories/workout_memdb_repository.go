package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"homefit/internal/models"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// MemDBWorkoutRepository is an in-memory implementation of WorkoutRepository.
type MemDBWorkoutRepository struct {
	db *memdb.MemDB
}

// NewMemDBWorkoutRepository creates a new instance of MemDBWorkoutRepository.
func NewMemDBWorkoutRepository(db *memdb.MemDB) *MemDBWorkoutRepository {
	return &MemDBWorkoutRepository{db: db}
}

// GetAll returns all workouts in insertion order.
func (r *MemDBWorkoutRepository) GetAll(_ context.Context) ([]models.Workout, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableWorkouts, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all workouts: %w", err)
	}
	workouts := make([]models.Workout, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		workouts = append(workouts, *obj.(*models.Workout))
	}
	sort.SliceStable(workouts, func(i, j int) bool { return workouts[i].CreatedAt.Before(workouts[j].CreatedAt) })
	return workouts, nil
}

// GetByID returns a copy of the workout with the given ID.
func (r *MemDBWorkoutRepository) GetByID(_ context.Context, id string) (*models.Workout, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableWorkouts, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout by ID %s: %w", id, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	workout := *obj.(*models.Workout)
	return &workout, nil
}

// Create stores a copy of the workout, assigning an ID and timestamps.
func (r *MemDBWorkoutRepository) Create(_ context.Context, workout *models.Workout) error {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	now := time.Now()
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}
	workout.UpdatedAt = now

	txn := r.db.Txn(true)
	defer txn.Abort()
	stored := *workout
	if err := txn.Insert(tableWorkouts, &stored); err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	txn.Commit()
	return nil
}

// UpdateFields replaces the stored workout with one carrying the new field values.
func (r *MemDBWorkoutRepository) UpdateFields(_ context.Context, id string, fields models.WorkoutFields) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableWorkouts, "id", id)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if obj == nil {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	updated := *obj.(*models.Workout)
	updated.Apply(fields)
	updated.UpdatedAt = time.Now()
	if err := txn.Insert(tableWorkouts, &updated); err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	txn.Commit()
	return nil
}

// Delete removes a workout by its ID.
func (r *MemDBWorkoutRepository) Delete(_ context.Context, id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(tableWorkouts, "id", id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	txn.Commit()
	return nil
}
