// Package serialize converts stored documents into transport-safe maps:
// the store-native identifier becomes a string "id" and native timestamps
// become RFC 3339 strings. Everything else passes through untouched.
package serialize

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document serializes one stored document. It is idempotent: a map that
// carries no native identifier or timestamp types comes back unchanged.
// It never fails; unrecognized values pass through as-is.
func Document(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = stringifyID(id)
	}

	for k, v := range out {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.Format(time.RFC3339Nano)
		case primitive.DateTime:
			out[k] = t.Time().UTC().Format(time.RFC3339Nano)
		}
	}
	return out
}

// Documents serializes a slice, always returning a non-nil slice so empty
// results encode as [] rather than null.
func Documents(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Document(doc))
	}
	return out
}

func stringifyID(id interface{}) string {
	switch t := id.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
