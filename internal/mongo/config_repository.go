package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pscheid92/confgate/internal/domain"
	"github.com/pscheid92/confgate/internal/metrics"
	"go.mongodb.org/mongo-driver/bson"
	gomongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConfigRepo is the read-only repository over the configuration database.
// Each environment maps to one collection.
type ConfigRepo struct {
	db *gomongo.Database
}

func NewConfigRepo(client *gomongo.Client, database string) *ConfigRepo {
	return &ConfigRepo{db: client.Database(database)}
}

// ListRecords returns every record in the environment's collection, in
// storage-returned order.
func (r *ConfigRepo) ListRecords(ctx context.Context, env string) ([]domain.ConfigRecord, error) {
	defer observe("list_records")()

	cursor, err := r.db.Collection(env).Find(ctx, bson.D{})
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("list_records").Inc()
		return nil, fmt.Errorf("failed to list records in %q: %w", env, err)
	}

	var records []domain.ConfigRecord
	if err := cursor.All(ctx, &records); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("list_records").Inc()
		return nil, fmt.Errorf("failed to decode records in %q: %w", env, err)
	}

	return records, nil
}

// FindByApp returns the first record in the environment's collection whose
// "app" field equals app. A missing record is reported as a nil record
// with a nil error.
func (r *ConfigRepo) FindByApp(ctx context.Context, env, app string) (domain.ConfigRecord, error) {
	defer observe("find_by_app")()

	var record domain.ConfigRecord
	err := r.db.Collection(env).FindOne(ctx, bson.M{domain.FieldApp: app}).Decode(&record)
	if errors.Is(err, gomongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_by_app").Inc()
		return nil, fmt.Errorf("failed to find app %q in %q: %w", app, env, err)
	}

	return record, nil
}

// HealthCheck pings the primary, for use as a readiness probe.
func (r *ConfigRepo) HealthCheck(ctx context.Context) error {
	if err := r.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

func observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.MongoOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
