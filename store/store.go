package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means no document exists for the given id.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable means the backing database is not configured or not
	// reachable. Read paths degrade to defaults, write paths surface it.
	ErrUnavailable = errors.New("document store unavailable")
)

// Query narrows and orders a ReadMany. Zero value reads the whole collection
// in natural order.
type Query struct {
	Eq     map[string]interface{}
	SortBy string
	Desc   bool
}

// Gateway is the document-store contract the rest of the code programs
// against. Tests substitute a fake.
type Gateway interface {
	Create(ctx context.Context, collection string, data interface{}) (string, error)
	ReadOne(ctx context.Context, collection, id string, out interface{}) error
	ReadMany(ctx context.Context, collection string, q Query, out interface{}) error
	Update(ctx context.Context, collection, id string, partial interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Upsert(ctx context.Context, collection, id string, data interface{}) error
}

// Store implements Gateway against a mongo database. A nil database puts the
// store into degraded mode: every call fails with ErrUnavailable.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Create inserts data with createdAt/updatedAt stamped to now and returns the
// assigned id as a hex string.
func (s *Store) Create(ctx context.Context, collection string, data interface{}) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	doc, err := toDoc(data)
	if err != nil {
		return "", err
	}
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) ReadOne(ctx context.Context, collection, id string, out interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	err := s.db.Collection(collection).FindOne(ctx, idFilter(id)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) ReadMany(ctx context.Context, collection string, q Query, out interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	filter := bson.M{}
	for k, v := range q.Eq {
		filter[k] = v
	}
	opts := options.Find()
	if q.SortBy != "" {
		dir := 1
		if q.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.SortBy, Value: dir}})
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// Update applies a partial $set and refreshes updatedAt. The id and createdAt
// of the target are never touched.
func (s *Store) Update(ctx context.Context, collection, id string, partial interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	doc, err := toDoc(partial)
	if err != nil {
		return err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = time.Now()

	res, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if s.db == nil {
		return ErrUnavailable
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert writes a singleton document under a well-known id in one atomic
// operation: overwrite the fields if present, create with a fresh createdAt
// if absent. A transient write failure is reported as a failure, never
// misread as "document missing".
func (s *Store) Upsert(ctx context.Context, collection, id string, data interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	doc, err := toDoc(data)
	if err != nil {
		return err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = time.Now()

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	_, err = s.db.Collection(collection).UpdateOne(ctx, idFilter(id), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

// idFilter matches 24-char hex ids as ObjectIDs (collection records) and
// anything else as a literal string _id (singleton documents like "about").
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func toDoc(data interface{}) (bson.M, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}
