package database

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Compile-time assertions: both stores satisfy the Store contract.
var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// MemoryStore is an in-memory Store used as the substitute backend in tests.
// Documents keep insertion order; ids are generated UUIDs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) CreateDocument(ctx context.Context, collection string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	id := uuid.NewString()
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range s.collections[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if filter.Matches(doc) {
			out := bson.M{}
			for k, v := range doc {
				out[k] = v
			}
			docs = append(docs, out)
		}
	}
	return docs, nil
}

func (s *MemoryStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if filter.Matches(doc) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ListCollections(ctx context.Context, max int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (s *MemoryStore) DescribeConnection(ctx context.Context) ConnectionStatus {
	return ConnectionStatus{Configured: true, Connected: true, Database: "memory"}
}
