package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homefit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type workoutDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Excercise string             `bson:"excercise"`
	Weight    string             `bson:"weight"`
	Sets      string             `bson:"sets"`
	Reps      string             `bson:"reps"`
	Author    string             `bson:"author,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func workoutToDocument(w *models.Workout) workoutDocument {
	doc := workoutDocument{
		Excercise: w.Excercise,
		Weight:    w.Weight,
		Sets:      w.Sets,
		Reps:      w.Reps,
		Author:    w.Author,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(w.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d workoutDocument) model() models.Workout {
	return models.Workout{
		ID:        d.ID.Hex(),
		Excercise: d.Excercise,
		Weight:    d.Weight,
		Sets:      d.Sets,
		Reps:      d.Reps,
		Author:    d.Author,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func workoutFieldsUpdate(f models.WorkoutFields, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"excercise": f.Excercise,
		"weight":    f.Weight,
		"sets":      f.Sets,
		"reps":      f.Reps,
		"updatedAt": now,
	}}
}

// MongoWorkoutRepository stores workouts in the "workout" collection.
type MongoWorkoutRepository struct {
	coll *mongo.Collection
}

func NewMongoWorkoutRepository(coll *mongo.Collection) *MongoWorkoutRepository {
	return &MongoWorkoutRepository{coll: coll}
}

func (r *MongoWorkoutRepository) GetAll(ctx context.Context) ([]models.Workout, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all workouts: %w", err)
	}
	var docs []workoutDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %w", err)
	}
	workouts := make([]models.Workout, 0, len(docs))
	for _, d := range docs {
		workouts = append(workouts, d.model())
	}
	return workouts, nil
}

func (r *MongoWorkoutRepository) GetByID(ctx context.Context, id string) (*models.Workout, error) {
	oid, err := objectID("workout", id)
	if err != nil {
		return nil, err
	}
	var doc workoutDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get workout by ID %s: %w", id, err)
	}
	workout := doc.model()
	return &workout, nil
}

func (r *MongoWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	now := time.Now().UTC()
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}
	workout.UpdatedAt = now

	doc := workoutToDocument(workout)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	workout.ID = doc.ID.Hex()
	return nil
}

func (r *MongoWorkoutRepository) UpdateFields(ctx context.Context, id string, fields models.WorkoutFields) error {
	oid, err := objectID("workout", id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, workoutFieldsUpdate(fields, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *MongoWorkoutRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("workout", id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("workout with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
