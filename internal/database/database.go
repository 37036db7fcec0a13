package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDatabaseName = "consciouswork"

// Store is the document store contract the API layer depends on. The Mongo
// implementation backs production; MemoryStore substitutes in tests.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc bson.M) (string, error)
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.M, error)
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
	ListCollections(ctx context.Context, max int) ([]string, error)
	DescribeConnection(ctx context.Context) ConnectionStatus
}

// ConnectionStatus describes store reachability for the diagnostic endpoint.
type ConnectionStatus struct {
	Configured bool
	Connected  bool
	Database   string
	Error      string
}

// MongoStore wraps a process-wide MongoDB connection. A zero-value client
// (store never configured) is valid: writes fail with PersistenceError and
// reads return empty results, so the server keeps serving.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the store. An empty mongoURI yields a degraded store rather
// than an error, so startup never depends on database configuration. A
// configured but unreachable store is also tolerated: the ping failure is
// logged and surfaces later as PersistenceError per request.
func Connect(mongoURI, databaseName string) *MongoStore {
	if mongoURI == "" {
		log.Println("⚠️  DATABASE_URL not set. Store is running in degraded mode (writes fail, reads are empty)")
		return &MongoStore{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Printf("⚠️  Invalid MongoDB configuration: %v. Store is running in degraded mode", err)
		return &MongoStore{}
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		// Keep the client: the driver reconnects lazily, and per-request
		// operations report PersistenceError until the store is reachable.
		log.Printf("⚠️  MongoDB ping failed: %v (continuing; operations will error until reachable)", err)
	} else {
		log.Println("✅ Connected to MongoDB")
	}

	if databaseName == "" {
		databaseName = databaseNameFromURI(mongoURI)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(databaseName),
	}
}

// databaseNameFromURI extracts the path component of a connection string,
// e.g. mongodb://host:27017/mydb?opts → mydb.
func databaseNameFromURI(mongoURI string) string {
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		dbPart := strings.Split(parts[len(parts)-1], "?")[0]
		if dbPart != "" {
			return dbPart
		}
	}
	return defaultDatabaseName
}

// Disconnect closes the connection. Safe to call on a degraded store.
func (s *MongoStore) Disconnect() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// CreateDocument persists doc as a new record and returns the generated id.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc bson.M) (string, error) {
	if s.db == nil {
		return "", &PersistenceError{Op: "insert", Err: ErrNotConfigured}
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &PersistenceError{Op: "insert", Err: err}
	}
	return stringifyID(res.InsertedID), nil
}

// GetDocuments returns up to limit matching records in store order.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return []bson.M{}, nil
	}
	findOptions := options.Find()
	findOptions.SetLimit(limit)

	cursor, err := s.db.Collection(collection).Find(ctx, filter.BSON(), findOptions)
	if err != nil {
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	return docs, nil
}

// CountDocuments counts matching records with the same filter semantics as
// GetDocuments.
func (s *MongoStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	if s.db == nil {
		return 0, nil
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter.BSON())
	if err != nil {
		return 0, &PersistenceError{Op: "count", Err: err}
	}
	return n, nil
}

// ListCollections returns up to max collection names, for diagnostics.
func (s *MongoStore) ListCollections(ctx context.Context, max int) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// DescribeConnection probes the store and never returns an error; failures
// are reported inside the descriptor.
func (s *MongoStore) DescribeConnection(ctx context.Context) ConnectionStatus {
	if s.client == nil {
		return ConnectionStatus{Configured: false}
	}
	status := ConnectionStatus{Configured: true, Database: s.db.Name()}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Ping(pingCtx, nil); err != nil {
		status.Error = err.Error()
		return status
	}
	status.Connected = true
	return status
}

func stringifyID(id interface{}) string {
	type hexer interface{ Hex() string }
	if h, ok := id.(hexer); ok {
		return h.Hex()
	}
	return fmt.Sprintf("%v", id)
}
