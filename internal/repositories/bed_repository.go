package repositories

import (
	"context"

	"homefit/internal/models"
)

// BedRepository defines the interface for bed data access.
type BedRepository interface {
	GetAll(ctx context.Context) ([]models.Bed, error)
	GetByID(ctx context.Context, id string) (*models.Bed, error)
	Create(ctx context.Context, bed *models.Bed) error
	// UpdateFields overwrites only the editable fields of the bed with the given ID.
	UpdateFields(ctx context.Context, id string, fields models.BedFields) error
	Delete(ctx context.Context, id string) error
}
