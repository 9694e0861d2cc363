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

type bedDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	BedLength   string             `bson:"BedLength"`
	BedWidth    string             `bson:"BedWidth"`
	MatressType string             `bson:"MatressType"`
	BedSize     string             `bson:"BedSize"`
	Author      string             `bson:"author,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func bedToDocument(b *models.Bed) bedDocument {
	doc := bedDocument{
		BedLength:   b.BedLength,
		BedWidth:    b.BedWidth,
		MatressType: b.MatressType,
		BedSize:     b.BedSize,
		Author:      b.Author,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(b.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d bedDocument) model() models.Bed {
	return models.Bed{
		ID:          d.ID.Hex(),
		BedLength:   d.BedLength,
		BedWidth:    d.BedWidth,
		MatressType: d.MatressType,
		BedSize:     d.BedSize,
		Author:      d.Author,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func bedFieldsUpdate(f models.BedFields, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"BedLength":   f.BedLength,
		"BedWidth":    f.BedWidth,
		"MatressType": f.MatressType,
		"BedSize":     f.BedSize,
		"updatedAt":   now,
	}}
}

// MongoBedRepository stores beds as documents in the "bed" collection.
type MongoBedRepository struct {
	coll *mongo.Collection
}

func NewMongoBedRepository(coll *mongo.Collection) *MongoBedRepository {
	return &MongoBedRepository{coll: coll}
}

// GetAll returns every bed in the collection's natural order.
func (r *MongoBedRepository) GetAll(ctx context.Context) ([]models.Bed, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all beds: %w", err)
	}
	var docs []bedDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode beds: %w", err)
	}
	beds := make([]models.Bed, 0, len(docs))
	for _, d := range docs {
		beds = append(beds, d.model())
	}
	return beds, nil
}

func (r *MongoBedRepository) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	oid, err := objectID("bed", id)
	if err != nil {
		return nil, err
	}
	var doc bedDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bed by ID %s: %w", id, err)
	}
	bed := doc.model()
	return &bed, nil
}

// Create inserts the bed and writes the generated ObjectID back into bed.ID.
func (r *MongoBedRepository) Create(ctx context.Context, bed *models.Bed) error {
	now := time.Now().UTC()
	if bed.CreatedAt.IsZero() {
		bed.CreatedAt = now
	}
	bed.UpdatedAt = now

	doc := bedToDocument(bed)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create bed: %w", err)
	}
	bed.ID = doc.ID.Hex()
	return nil
}

func (r *MongoBedRepository) UpdateFields(ctx context.Context, id string, fields models.BedFields) error {
	oid, err := objectID("bed", id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bedFieldsUpdate(fields, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to update bed: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *MongoBedRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("bed", id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("bed with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
