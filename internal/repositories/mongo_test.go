package repositories

import (
	"testing"
	"time"

	"homefit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := objectID("bed", oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = objectID("bed", "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBedDocumentRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	bed := &models.Bed{
		ID:          primitive.NewObjectID().Hex(),
		BedLength:   "200",
		BedWidth:    "90",
		MatressType: "foam",
		BedSize:     "single",
		Author:      "user-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	raw, err := bson.Marshal(bedToDocument(bed))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, "90", fields["BedWidth"])
	assert.Equal(t, "user-1", fields["author"])

	var doc bedDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.model()
	assert.Equal(t, bed.ID, got.ID)
	assert.Equal(t, bed.Fields(), got.Fields())
	assert.Equal(t, bed.Author, got.Author)
	assert.True(t, bed.CreatedAt.Equal(got.CreatedAt))
}

func TestWorkoutDocument_NoAuthorOmitted(t *testing.T) {
	raw, err := bson.Marshal(workoutToDocument(&models.Workout{Excercise: "row", Weight: "40", Sets: "3", Reps: "12"}))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, "row", fields["excercise"])
	assert.NotContains(t, fields, "author")
	assert.NotContains(t, fields, "_id", "invalid IDs are left for the server to assign")
}

func TestFieldsUpdateTouchesOnlyEditableFields(t *testing.T) {
	now := time.Now()
	set := bedFieldsUpdate(models.BedFields{BedLength: "1", BedWidth: "2", MatressType: "3", BedSize: "4"}, now)["$set"].(bson.M)
	assert.Len(t, set, 5)
	assert.NotContains(t, set, "author")
	assert.Equal(t, now, set["updatedAt"])

	set = workoutFieldsUpdate(models.WorkoutFields{Excercise: "a", Weight: "b", Sets: "c", Reps: "d"}, now)["$set"].(bson.M)
	assert.Equal(t, "d", set["reps"])
	assert.NotContains(t, set, "author")
}
