//go:build e2e

package messaging

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinemaplus/internal/infra/broker"
	"cinemaplus/internal/infra/lock"
	"cinemaplus/internal/pkg/config"
	"cinemaplus/tests/e2e"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	info := e2e.StartContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}, "6379/tcp")

	client, err := lock.NewRedisClient(ctx, config.RedisConfig{Addr: fmt.Sprintf("%s:%s", info.Host, info.Port.Port())})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	a := lock.NewRedisLocker(client)
	b := lock.NewRedisLocker(client)

	release, ok, err := a.TryLock(ctx, "booking-expiry", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("second holder is refused while the lock is held", func(t *testing.T) {
		_, ok, err := b.TryLock(ctx, "booking-expiry", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other job names are independent", func(t *testing.T) {
		rel, ok, err := b.TryLock(ctx, "movie-status", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		rel(ctx)
	})

	t.Run("release frees the key", func(t *testing.T) {
		release(ctx)

		rel, ok, err := b.TryLock(ctx, "booking-expiry", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		rel(ctx)
	})

	t.Run("expired lock can be taken over and the stale release is a no-op", func(t *testing.T) {
		stale, ok, err := a.TryLock(ctx, "voucher-expiry", 200*time.Millisecond)
		require.NoError(t, err)
		require.True(t, ok)

		require.Eventually(t, func() bool {
			return client.Exists(ctx, "cinemaplus:job:voucher-expiry").Val() == 0
		}, 5*time.Second, 50*time.Millisecond)

		fresh, ok, err := b.TryLock(ctx, "voucher-expiry", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		stale(ctx)
		assert.Equal(t, int64(1), client.Exists(ctx, "cinemaplus:job:voucher-expiry").Val())
		fresh(ctx)
	})
}

func TestRabbitPublisher(t *testing.T) {
	ctx := context.Background()
	info := e2e.StartContainer(t, testcontainers.ContainerRequest{
		Image:        "rabbitmq:3.13-alpine",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(120 * time.Second),
	}, "5672/tcp")
	url := fmt.Sprintf("amqp://guest:guest@%s:%s/", info.Host, info.Port.Port())

	pub := broker.NewRabbitPublisher(url)
	t.Cleanup(func() { _ = pub.Close() })

	body := []byte(`{"booking_id":"b1","kind":"booking.expired"}`)
	require.NoError(t, pub.Publish(ctx, "booking.events", body))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok, err = ch.Get("booking.events", true)
		return err == nil && ok
	}, 10*time.Second, 100*time.Millisecond)

	assert.Equal(t, body, msg.Body)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	t.Run("publisher reconnects after the connection is closed", func(t *testing.T) {
		require.NoError(t, pub.Close())
		assert.NoError(t, pub.Publish(ctx, "booking.events", body))
	})
}
