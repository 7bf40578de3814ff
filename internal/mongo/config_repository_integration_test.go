package mongo

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

var (
	testMongoURL   string
	mongoContainer testcontainers.Container
)

func TestMain(m *testing.M) {
	// Parse flags to check for -short
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	mongoContainer, err = mongodb.Run(ctx, "mongo:7")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongodb container: %v\n", err)
		os.Exit(1)
	}

	testMongoURL, err = mongoContainer.(*mongodb.MongoDBContainer).ConnectionString(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get mongodb connection string: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := mongoContainer.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate mongodb container: %v\n", err)
	}
	os.Exit(code)
}

func setupTestRepo(t *testing.T) (*ConfigRepo, *gomongo.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	client, err := Connect(ctx, testMongoURL)
	require.NoError(t, err)

	// Fresh database per test to isolate collections
	dbName := fmt.Sprintf("config_%s", t.Name())
	t.Cleanup(func() {
		_ = client.Database(dbName).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return NewConfigRepo(client, dbName), client
}

func insertRecords(t *testing.T, client *gomongo.Client, db, env string, docs ...any) {
	t.Helper()
	_, err := client.Database(db).Collection(env).InsertMany(context.Background(), docs)
	require.NoError(t, err)
}

func TestListRecords(t *testing.T) {
	repo, client := setupTestRepo(t)
	ctx := context.Background()
	dbName := repo.db.Name()

	insertRecords(t, client, dbName, "dev",
		bson.M{"app": "billing", "x": 1},
		bson.M{"app": "shipping", "y": 2},
	)

	records, err := repo.ListRecords(ctx, "dev")
	require.NoError(t, err)
	require.Len(t, records, 2)

	names := []string{records[0].AppName(), records[1].AppName()}
	assert.Equal(t, []string{"billing", "shipping"}, names)
}

func TestListRecords_EmptyCollection(t *testing.T) {
	repo, _ := setupTestRepo(t)

	records, err := repo.ListRecords(context.Background(), "dev")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFindByApp(t *testing.T) {
	repo, client := setupTestRepo(t)
	ctx := context.Background()

	insertRecords(t, client, repo.db.Name(), "prod",
		bson.M{"app": "billing", "timeout": 30},
	)

	record, err := repo.FindByApp(ctx, "prod", "billing")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "billing", record.AppName())
	assert.Contains(t, record, "_id")
	assert.Contains(t, record, "timeout")
}

func TestFindByApp_Missing(t *testing.T) {
	repo, _ := setupTestRepo(t)

	record, err := repo.FindByApp(context.Background(), "prod", "nope")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFindByApp_MissingAppField(t *testing.T) {
	repo, client := setupTestRepo(t)
	ctx := context.Background()

	insertRecords(t, client, repo.db.Name(), "dev", bson.M{"orphan": true})

	records, err := repo.ListRecords(ctx, "dev")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The fallback name is the internal identifier
	assert.NotEmpty(t, records[0].AppName())

	record, err := repo.FindByApp(ctx, "dev", records[0].AppName())
	require.NoError(t, err)
	assert.Nil(t, record, "records without an app field are unreachable by app name")
}

func TestHealthCheck(t *testing.T) {
	repo, _ := setupTestRepo(t)

	assert.NoError(t, repo.HealthCheck(context.Background()))
}

func TestRecordRoundTrip_View(t *testing.T) {
	repo, client := setupTestRepo(t)
	ctx := context.Background()

	insertRecords(t, client, repo.db.Name(), "test",
		bson.M{"app": "billing", "x": 1, "nested": bson.M{"a": "b"}},
	)

	record, err := repo.FindByApp(ctx, "test", "billing")
	require.NoError(t, err)

	view := record.View("test")
	assert.Equal(t, "test", view["env"])
	assert.NotContains(t, view, "_id")
	assert.NotContains(t, view, "app")
	assert.Contains(t, view, "nested")
}
