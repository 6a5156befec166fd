package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// codeNamespaceExists is returned by createCollection for an existing name.
const codeNamespaceExists = 48

// MongoStore maps each named collection onto one MongoDB collection. Stored
// documents have the shape {_id, metadata, document}.
type MongoStore struct {
	db *mongo.Database

	mu      sync.Mutex
	handles map[string]*mongoCollection
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) Name() string { return c.coll.Name() }

func (c *mongoCollection) Count(ctx context.Context) (int64, error) {
	return c.coll.CountDocuments(ctx, bson.M{})
}

type mongoRecord struct {
	ID       string `bson:"_id"`
	Metadata bson.M `bson:"metadata"`
	Document string `bson:"document,omitempty"`
}

// NewMongoStore wraps an already connected database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db, handles: make(map[string]*mongoCollection)}
}

func (s *MongoStore) handle(ctx context.Context, name string) (*mongoCollection, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.handles[name]; ok {
		return h, nil
	}

	if err := s.db.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
			return nil, fmt.Errorf("create collection %s: %w", name, err)
		}
	}
	h := &mongoCollection{coll: s.db.Collection(name)}
	s.handles[name] = h
	return h, nil
}

func (s *MongoStore) Collection(ctx context.Context, name string) (Collection, error) {
	return s.handle(ctx, name)
}

func (s *MongoStore) Upsert(ctx context.Context, name string, ids []string, metadatas []map[string]interface{}, documents []string) error {
	if err := checkUpsertArgs(name, ids, metadatas, documents); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	h, err := s.handle(ctx, name)
	if err != nil {
		return err
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		doc := mongoRecord{ID: id, Metadata: bson.M(metadatas[i])}
		if documents != nil {
			doc.Document = documents[i]
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	// ordered so that a repeated id inside one batch resolves to the last write
	if _, err := h.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("upsert into %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) GetByIDs(ctx context.Context, name string, ids []string) ([]Record, error) {
	h, err := s.handle(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Record{}, nil
	}

	found, err := s.find(ctx, h, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("get %s by ids: %w", name, err)
	}

	byID := make(map[string]Record, len(found))
	for _, rec := range found {
		byID[rec.ID] = rec
	}
	out := make([]Record, 0, len(found))
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
			delete(byID, id)
		}
	}
	return out, nil
}

func (s *MongoStore) GetByFilter(ctx context.Context, name string, filter Filter) ([]Record, error) {
	h, err := s.handle(ctx, name)
	if err != nil {
		return nil, err
	}
	out, err := s.find(ctx, h, MongoFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return out, nil
}

func (s *MongoStore) GetAll(ctx context.Context, name string) ([]Record, error) {
	return s.GetByFilter(ctx, name, nil)
}

func (s *MongoStore) Delete(ctx context.Context, name string, ids []string) error {
	h, err := s.handle(ctx, name)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if _, err := h.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("delete from %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) find(ctx context.Context, h *mongoCollection, filter bson.M) ([]Record, error) {
	cursor, err := h.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoRecord
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, Record{ID: d.ID, Metadata: Normalize(d.Metadata), Document: d.Document})
	}
	return out, nil
}

// MongoFilter translates an attribute-equality filter into a query on the
// nested metadata document.
func MongoFilter(filter Filter) bson.M {
	q := bson.M{}
	for key, value := range filter {
		q["metadata."+key] = value
	}
	return q
}
