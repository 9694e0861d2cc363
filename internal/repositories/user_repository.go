package repositories

import (
	"context"

	"homefit/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// Store bundles the repositories of one storage backend.
type Store struct {
	Beds     BedRepository
	Workouts WorkoutRepository
	Users    UserRepository
	// Close releases the backend's connections. Never nil.
	Close func(ctx context.Context) error
}
