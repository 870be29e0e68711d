package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// PdfBucketName is the GridFS bucket holding generated request forms.
const PdfBucketName = "requestForm"

const (
	connectAttempts = 3
	connectBackoff  = time.Second
)

// Store bundles the process-wide Mongo resources. Constructed once in main
// and handed to the repositories; nothing reaches for it through globals.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
	Bucket *gridfs.Bucket
}

// ConnectDB dials Mongo with a bounded retry and verifies the connection
// with a ping before returning.
func ConnectDB(ctx context.Context, env Env) (*Store, error) {
	opts := options.Client().
		ApplyURI(env.MongoURI).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetMaxPoolSize(50).
		SetRetryWrites(true).
		SetRetryReads(true)

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				db := client.Database(env.MongoDB)
				bucket, berr := gridfs.NewBucket(db, options.GridFSBucket().SetName(PdfBucketName))
				if berr != nil {
					_ = client.Disconnect(ctx)
					return nil, fmt.Errorf("gridfs bucket: %w", berr)
				}
				return &Store{Client: client, DB: db, Bucket: bucket}, nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err
		if attempt < connectAttempts {
			select {
			case <-time.After(connectBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("mongo connect after %d attempts: %w", connectAttempts, lastErr)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}

// Ping checks the connection, used by the db-check endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
