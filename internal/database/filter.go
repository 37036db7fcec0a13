package database

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

// Op is a filter operator. Only single-field equality and ordered-sequence
// membership are supported.
type Op string

const (
	OpEquals   Op = "equals"
	OpContains Op = "contains"
)

// Condition matches one field against one value.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter is a conjunction of conditions. An empty filter matches everything.
type Filter []Condition

// Eq matches documents whose field equals value.
func Eq(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// Contains matches documents whose field is an ordered sequence containing value.
func Contains(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpContains, Value: value}
}

// BSON renders the filter as a MongoDB query document.
func (f Filter) BSON() bson.M {
	query := bson.M{}
	for _, c := range f {
		switch c.Op {
		case OpContains:
			query[c.Field] = bson.M{"$in": []interface{}{c.Value}}
		default:
			query[c.Field] = c.Value
		}
	}
	return query
}

// Matches evaluates the filter against a document in memory. Semantics mirror
// BSON: equality is deep, membership walks the sequence.
func (f Filter) Matches(doc bson.M) bool {
	for _, c := range f {
		got, ok := doc[c.Field]
		if !ok {
			return false
		}
		switch c.Op {
		case OpContains:
			if !sequenceContains(got, c.Value) {
				return false
			}
		default:
			if !reflect.DeepEqual(got, c.Value) {
				return false
			}
		}
	}
	return true
}

func sequenceContains(seq, value interface{}) bool {
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if reflect.DeepEqual(rv.Index(i).Interface(), value) {
			return true
		}
	}
	return false
}
