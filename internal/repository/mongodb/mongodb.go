// Package mongodb implements the storage layer on a MongoDB database. The
// slug uniqueness constraint for events and the secondary index on booking
// event references live here, not in application logic.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// Connect opens a client for the given connection string and returns a
// handle on the database named in it. The connection is verified with a
// ping before it is handed out.
func Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return nil, fmt.Errorf("mongodb uri %q has no database name", uri)
	}

	opts := options.Client().
		ApplyURI(cs.String()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client.Database(cs.Database), nil
}

// EnsureIndexes creates the indexes the repositories rely on: a unique index
// on events.slug (the commit gate depends on it to resolve concurrent
// creates racing onto the same slug) and a secondary index on
// bookings.event_id for per-event listings. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(eventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create events slug index: %w", err)
	}
	_, err = db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create bookings event_id index: %w", err)
	}
	return nil
}
