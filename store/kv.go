package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	kvCollectionName = "kv_store"
)

var ErrKeyNotFound = fmt.Errorf("key not found")

// KeyValueStore - external storage abstraction. Values are opaque JSON
// documents stored verbatim under string keys. There are no transactions and
// no secondary indexes; prefix scan is the only query primitive.
type KeyValueStore interface {
	Get(ctx context.Context, key string, value interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Pinger
	Closer
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// kvDocument is the single-collection layout: the key is the document id and
// the value is the record serialized as JSON text.
type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoKV struct {
	client   *mongo.Client
	database string
}

// NewMongoKeyValueStore - return a mongo-backed key-value store
func NewMongoKeyValueStore(client *mongo.Client, database string) KeyValueStore {
	return &mongoKV{
		client:   client,
		database: database,
	}
}

func (m *mongoKV) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(kvCollectionName)
}

// Get decodes the value stored under key into value. It returns
// ErrKeyNotFound when the key does not exist.
func (m *mongoKV) Get(ctx context.Context, key string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	if err := m.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrKeyNotFound
		}
		return err
	}

	return json.Unmarshal([]byte(doc.Value), value)
}

// Set stores value under key, replacing any previous value. The write is an
// upsert on the key, so concurrent writers of the same key converge on a
// single document.
func (m *mongoKV) Set(ctx context.Context, key string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = m.collection().ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: string(data)},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the value stored under key. Deleting a missing key is not
// an error.
func (m *mongoKV) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection().DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// GetByPrefix returns the raw JSON values of every key starting with prefix.
func (m *mongoKV) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"_id": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	cursor, err := m.collection().Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	values := make([][]byte, 0)
	for cursor.Next(ctx) {
		var doc kvDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		values = append(values, []byte(doc.Value))
	}

	return values, cursor.Err()
}

// Ping - ping mongo db
func (m *mongoKV) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoKV) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}
