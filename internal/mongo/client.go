package mongo

import (
	"context"
	"fmt"

	gomongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client for the given MongoDB URL and verifies the
// connection with a ping. The returned client pools connections and is
// safe for concurrent use.
func Connect(ctx context.Context, url string) (*gomongo.Client, error) {
	client, err := gomongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
