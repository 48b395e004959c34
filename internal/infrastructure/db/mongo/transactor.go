package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoTransactions is returned by CheckTransactions when the server is a
// standalone mongod.
var ErrNoTransactions = errors.New("mongo deployment does not support transactions (needs a replica set or sharded cluster)")

// Transactor implements ports.Transactor with multi-document transactions.
// Transactions need a replica set. With enabled=false fn runs directly:
// entity locks still serialize writers, but a write that fails halfway
// through fn leaves the earlier writes in place.
type Transactor struct {
	client  *mongo.Client
	enabled bool
}

func NewTransactor(client *mongo.Client, enabled bool) *Transactor {
	return &Transactor{client: client, enabled: enabled}
}

// WithinTransaction runs fn in a session transaction. The driver retries fn
// on transient transaction errors.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled || mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	sess, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// CheckTransactions asks the server for its topology and reports
// ErrNoTransactions when multi-document transactions are unavailable.
func CheckTransactions(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var hello bson.M
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return fmt.Errorf("mongo hello: %w", err)
	}
	if !supportsTransactions(hello) {
		return ErrNoTransactions
	}
	return nil
}

// supportsTransactions reads a hello reply. Replica set members report
// setName and mongos routers report msg "isdbgrid".
func supportsTransactions(hello bson.M) bool {
	if name, _ := hello["setName"].(string); name != "" {
		return true
	}
	msg, _ := hello["msg"].(string)
	return msg == "isdbgrid"
}
