package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langdomain/pkg/mongo"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{})
	require.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestConnect_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mongo.Connect(ctx, mongo.Config{
		ConnectionURL: "mongodb://127.0.0.1:1",
		RetryAttempts: 3,
		RetryInterval: time.Second,
	})
	require.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestConnectDatabase(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	db, err := mongo.ConnectDatabase(context.Background(), mongo.Config{
		ConnectionURL: url,
		Database:      "langdomain_test",
		RetryAttempts: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Client().Disconnect(context.Background()) })

	assert.Equal(t, "langdomain_test", db.Name())
	assert.NoError(t, mongo.Healthcheck(db.Client())(context.Background()))
}
