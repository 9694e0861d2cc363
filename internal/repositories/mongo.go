package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB collection names, one per document class.
const (
	collectionBed     = "bed"
	collectionWorkout = "workout"
	collectionUser    = "user"
)

// OpenMongoStore connects to MongoDB and returns repositories backed by the named database.
func OpenMongoStore(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	return &Store{
		Beds:     NewMongoBedRepository(db.Collection(collectionBed)),
		Workouts: NewMongoWorkoutRepository(db.Collection(collectionWorkout)),
		Users:    NewMongoUserRepository(db.Collection(collectionUser)),
		Close:    client.Disconnect,
	}, nil
}

// objectID parses a hex document ID. Malformed IDs can never match a document,
// so they are reported as ErrNotFound.
func objectID(kind, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s with ID %s: %w", kind, id, ErrNotFound)
	}
	return oid, nil
}
