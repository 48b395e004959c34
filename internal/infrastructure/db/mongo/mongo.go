package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/systrack/systrack-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

const (
	collectionParts     = "parts"
	collectionSystems   = "systems"
	collectionEmployees = "employees"
	collectionAudit     = "audit_logs"
	collectionUsers     = "users"
)

// Unique index names. Duplicate-key errors are mapped back to domain errors
// by the index name the server reports.
const (
	indexPartBarcode    = "parts_barcode_unique"
	indexPartSerial     = "parts_serial_unique"
	indexSystemName     = "systems_name_unique"
	indexEmployeeNumber = "employees_number_unique"
	indexEmployeeEmail  = "employees_email_unique"
	indexEmployeePhone  = "employees_phone_unique"
	indexUserEmail      = "users_email_unique"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique and lookup indexes on every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Blank barcodes and phones are allowed more than once.
	nonEmpty := func(field string) bson.M {
		return bson.M{field: bson.M{"$type": "string", "$gt": ""}}
	}

	indexes := map[string][]mongo.IndexModel{
		collectionParts: {
			{Keys: bson.D{{Key: "barcode", Value: 1}}, Options: options.Index().SetName(indexPartBarcode).SetUnique(true).SetPartialFilterExpression(nonEmpty("barcode"))},
			{Keys: bson.D{{Key: "serial_number", Value: 1}}, Options: options.Index().SetName(indexPartSerial).SetUnique(true).SetPartialFilterExpression(nonEmpty("serial_number"))},
			{Keys: bson.D{{Key: "assigned_systems", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "part_type", Value: 1}}},
		},
		collectionSystems: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName(indexSystemName).SetUnique(true)},
			{Keys: bson.D{{Key: "parts", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionEmployees: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetName(indexEmployeeNumber).SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(indexEmployeeEmail).SetUnique(true).SetPartialFilterExpression(nonEmpty("email"))},
			{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetName(indexEmployeePhone).SetUnique(true).SetPartialFilterExpression(nonEmpty("phone"))},
			{Keys: bson.D{{Key: "allocated_sys", Value: 1}}},
		},
		collectionAudit: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "entity_id", Value: 1}}},
		},
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(indexUserEmail).SetUnique(true)},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// mapDuplicate translates a duplicate-key error into the domain error of the
// index that rejected the write. Other errors are returned unchanged.
func mapDuplicate(err error, byIndex map[string]error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	for name, derr := range byIndex {
		if strings.Contains(msg, name) {
			return derr
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
}
