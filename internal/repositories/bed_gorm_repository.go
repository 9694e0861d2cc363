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

// GORMBedRepository is a GORM implementation of BedRepository.
type GORMBedRepository struct {
	db *gorm.DB
}

// NewGORMBedRepository creates a new instance of GORMBedRepository.
func NewGORMBedRepository(db *gorm.DB) *GORMBedRepository {
	return &GORMBedRepository{db: db}
}

// GetAll retrieves all beds in the table's natural order.
func (r *GORMBedRepository) GetAll(ctx context.Context) ([]models.Bed, error) {
	var beds []models.Bed
	if err := r.db.WithContext(ctx).Find(&beds).Error; err != nil {
		return nil, fmt.Errorf("failed to get all beds: %w", err)
	}
	return beds, nil
}

// GetByID retrieves a single bed by its ID.
func (r *GORMBedRepository) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	var bed models.Bed
	if err := r.db.WithContext(ctx).First(&bed, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bed by ID %s: %w", id, err)
	}
	return &bed, nil
}

// Create inserts a new bed, assigning an ID if it has none.
func (r *GORMBedRepository) Create(ctx context.Context, bed *models.Bed) error {
	if bed.ID == "" {
		bed.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(bed).Error; err != nil {
		return fmt.Errorf("failed to create bed: %w", err)
	}
	return nil
}

// UpdateFields sets the editable columns of one bed.
func (r *GORMBedRepository) UpdateFields(ctx context.Context, id string, fields models.BedFields) error {
	res := r.db.WithContext(ctx).Model(&models.Bed{}).Where("id = ?", id).Updates(map[string]interface{}{
		"bed_length":   fields.BedLength,
		"bed_width":    fields.BedWidth,
		"matress_type": fields.MatressType,
		"bed_size":     fields.BedSize,
		"updated_at":   time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update bed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a bed by its ID.
func (r *GORMBedRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Bed{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
