package repositories

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

// memdb table names.
const (
	tableBeds     = "beds"
	tableWorkouts = "workouts"
	tableUsers    = "users"
)

func idIndex() *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:    "id",
		Unique:  true,
		Indexer: &memdb.StringFieldIndex{Field: "ID"},
	}
}

func memSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBeds: {
				Name:    tableBeds,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableWorkouts: {
				Name:    tableWorkouts,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableUsers: {
				Name: tableUsers,
				Indexes: map[string]*memdb.IndexSchema{
					"id": idIndex(),
					"username": {
						Name:    "username",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Username"},
					},
					"email": {
						Name:         "email",
						Unique:       true,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
		},
	}
}

// NewMemDBStore returns repositories kept in an in-process go-memdb database.
// Data does not survive a restart.
func NewMemDBStore() (*Store, error) {
	db, err := memdb.NewMemDB(memSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}
	return &Store{
		Beds:     NewMemDBBedRepository(db),
		Workouts: NewMemDBWorkoutRepository(db),
		Users:    NewMemDBUserRepository(db),
		Close:    func(context.Context) error { return nil },
	}, nil
}
