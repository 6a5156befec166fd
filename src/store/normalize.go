package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize converts bson container and date types into plain Go values
// (map[string]interface{}, []interface{}, time.Time) so every backend hands
// out attribute maps of the same shape.
func Normalize(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		return Normalize(t)
	case map[string]interface{}:
		return Normalize(t)
	case bson.D:
		return Normalize(t.Map())
	case bson.A:
		return normalizeSlice(t)
	case []interface{}:
		return normalizeSlice(t)
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	default:
		return v
	}
}

func normalizeSlice(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, item := range s {
		out[i] = normalizeValue(item)
	}
	return out
}
