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

// MemDBBedRepository is an in-memory implementation of BedRepository.
type MemDBBedRepository struct {
	db *memdb.MemDB
}

// NewMemDBBedRepository creates a new instance of MemDBBedRepository.
func NewMemDBBedRepository(db *memdb.MemDB) *MemDBBedRepository {
	return &MemDBBedRepository{db: db}
}

// GetAll returns all beds in insertion order.
func (r *MemDBBedRepository) GetAll(_ context.Context) ([]models.Bed, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableBeds, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all beds: %w", err)
	}
	beds := make([]models.Bed, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		beds = append(beds, *obj.(*models.Bed))
	}
	sort.SliceStable(beds, func(i, j int) bool { return beds[i].CreatedAt.Before(beds[j].CreatedAt) })
	return beds, nil
}

// GetByID returns a copy of the bed with the given ID.
func (r *MemDBBedRepository) GetByID(_ context.Context, id string) (*models.Bed, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableBeds, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bed by ID %s: %w", id, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	bed := *obj.(*models.Bed)
	return &bed, nil
}

// Create stores a copy of the bed, assigning an ID and timestamps.
func (r *MemDBBedRepository) Create(_ context.Context, bed *models.Bed) error {
	if bed.ID == "" {
		bed.ID = uuid.New().String()
	}
	now := time.Now()
	if bed.CreatedAt.IsZero() {
		bed.CreatedAt = now
	}
	bed.UpdatedAt = now

	txn := r.db.Txn(true)
	defer txn.Abort()
	stored := *bed
	if err := txn.Insert(tableBeds, &stored); err != nil {
		return fmt.Errorf("failed to create bed: %w", err)
	}
	txn.Commit()
	return nil
}

// UpdateFields replaces the stored bed with one carrying the new field values.
func (r *MemDBBedRepository) UpdateFields(_ context.Context, id string, fields models.BedFields) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableBeds, "id", id)
	if err != nil {
		return fmt.Errorf("failed to update bed: %w", err)
	}
	if obj == nil {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	updated := *obj.(*models.Bed)
	updated.Apply(fields)
	updated.UpdatedAt = time.Now()
	if err := txn.Insert(tableBeds, &updated); err != nil {
		return fmt.Errorf("failed to update bed: %w", err)
	}
	txn.Commit()
	return nil
}

// Delete removes a bed by its ID.
func (r *MemDBBedRepository) Delete(_ context.Context, id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(tableBeds, "id", id)
	if err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	txn.Commit()
	return nil
}
