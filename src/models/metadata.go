package models

import (
	"fmt"

	"admission-backend/src/store"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMetadata flattens a typed record into the attribute map stored in the
// document store, using the bson field names.
func ToMetadata(v interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return store.Normalize(m), nil
}

// FromMetadata decodes an attribute map into out, which must be a pointer
// to a record type.
func FromMetadata(m map[string]interface{}, out interface{}) error {
	if m == nil {
		m = map[string]interface{}{}
	}
	raw, err := bson.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}
	return nil
}
