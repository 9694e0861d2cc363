package repositories

import (
	"context"
	"fmt"
	"time"

	"homefit/internal/models"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// MemDBUserRepository is an in-memory implementation of UserRepository.
type MemDBUserRepository struct {
	db *memdb.MemDB
}

// NewMemDBUserRepository creates a new instance of MemDBUserRepository.
func NewMemDBUserRepository(db *memdb.MemDB) *MemDBUserRepository {
	return &MemDBUserRepository{db: db}
}

// Create adds a new user.
func (r *MemDBUserRepository) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	txn := r.db.Txn(true)
	defer txn.Abort()
	stored := *user
	if err := txn.Insert(tableUsers, &stored); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	txn.Commit()
	return nil
}

func (r *MemDBUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.first("username", username)
}

func (r *MemDBUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.first("email", email)
}

func (r *MemDBUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.first("id", id)
}

// Count returns the number of stored users.
func (r *MemDBUserRepository) Count(_ context.Context) (int64, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUsers, "id")
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	var n int64
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

func (r *MemDBUserRepository) first(index, value string) (*models.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableUsers, index, value)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", value, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("user %s: %w", value, ErrNotFound)
	}
	user := *obj.(*models.User)
	return &user, nil
}
