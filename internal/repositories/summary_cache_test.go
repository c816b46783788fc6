package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/paisable/paisable/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestSummaryCacheRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSummaryCacheRepository(client, time.Minute)
	ctx := context.Background()

	userID := uuid.New()
	summary := models.Summary{TotalIncome: 5000, TotalExpenses: 1000, Balance: 4000}

	t.Run("miss returns nil, not an error", func(t *testing.T) {
		cached, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("set then get round-trips the summary", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, userID, summary))

		cached, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, cached)
		assert.Equal(t, summary, *cached)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx, userID))

		cached, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("entries are scoped per user", func(t *testing.T) {
		otherUser := uuid.New()
		assert.NoError(t, repo.Set(ctx, userID, summary))

		cached, err := repo.Get(ctx, otherUser)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})
}

func TestSummaryCacheRepository_Expiration(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSummaryCacheRepository(client, 100*time.Millisecond)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, repo.Set(ctx, userID, models.Summary{TotalIncome: 10}))

	assert.Eventually(t, func() bool {
		cached, err := repo.Get(ctx, userID)
		return err == nil && cached == nil
	}, time.Second, 50*time.Millisecond)
}
