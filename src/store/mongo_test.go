package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoFilterTargetsMetadata(t *testing.T) {
	assert.Equal(t, bson.M{}, MongoFilter(nil))
	assert.Equal(t,
		bson.M{"metadata.status": "requested", "metadata.type": "loan"},
		MongoFilter(Filter{"status": "requested", "type": "loan"}),
	)
}

func TestNormalizeFlattensBsonTypes(t *testing.T) {
	when := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	in := bson.M{
		"name":      "Meera",
		"submitted": primitive.NewDateTimeFromTime(when),
		"documents": bson.A{bson.M{"type": "photo"}},
		"nested":    bson.D{{Key: "k", Value: "v"}},
	}

	out := Normalize(in)

	assert.Equal(t, "Meera", out["name"])
	assert.True(t, when.Equal(out["submitted"].(time.Time)))
	docs, ok := out["documents"].([]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, map[string]interface{}{"type": "photo"}, docs[0])
	}
	assert.Equal(t, map[string]interface{}{"k": "v"}, out["nested"])
	assert.NotNil(t, Normalize(nil))
}

func TestMatchesComparesTimesAndNumbers(t *testing.T) {
	now := time.Now()
	meta := map[string]interface{}{"at": now, "amount": int32(5000), "paid": false}

	assert.True(t, Matches(meta, Filter{"at": now.UTC(), "amount": 5000.0}))
	assert.True(t, Matches(meta, Filter{"paid": false}))
	assert.False(t, Matches(meta, Filter{"amount": "5000"}))
	assert.False(t, Matches(meta, Filter{"missing": nil}))
	assert.True(t, Matches(meta, nil))

	type status string
	assert.True(t, Matches(map[string]interface{}{"status": "submitted"}, Filter{"status": status("submitted")}))
	assert.False(t, Matches(map[string]interface{}{"status": "submitted"}, Filter{"status": status("rejected")}))
}
