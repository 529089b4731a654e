package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	err := client.Set(ctx, "greeting", "hello", 0)
	require.NoError(t, err)

	value, err := client.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	value, err := client.Get(ctx, "no-such-key")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestGetOrDefault(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	value, err := client.GetOrDefault(ctx, "no-such-key", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	require.NoError(t, client.Set(ctx, "present", "stored", 0))
	value, err = client.GetOrDefault(ctx, "present", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "stored", value)
}

func TestSetWithTTL(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	err := client.Set(ctx, "session", "token", time.Minute)
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	// Past the expiry the key is gone.
	mr.FastForward(2 * time.Minute)
	value, err := client.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSetWithoutTTLDoesNotExpire(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "durable", "value", 0))

	ttl, err := client.TTL(ctx, "durable")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestSetNX(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	wasSet, err := client.SetNX(ctx, "lock", "owner-1", 0)
	require.NoError(t, err)
	assert.True(t, wasSet)

	wasSet, err = client.SetNX(ctx, "lock", "owner-2", 0)
	require.NoError(t, err)
	assert.False(t, wasSet)

	value, err := client.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", value)
}

func TestDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", 0))
	require.NoError(t, client.Set(ctx, "b", "2", 0))

	deleted, err := client.Delete(ctx, "a", "b", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestDeleteMissingKeyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t)

	deleted, err := client.Delete(context.Background(), "no-such-key")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestExists(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "present", "value", 0))

	count, err := client.Exists(ctx, "present", "absent")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestExpire(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 0))

	ok, err := client.Expire(ctx, "key", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	ok, err = client.Expire(ctx, "missing", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTTLMissingKey(t *testing.T) {
	client, _ := newTestClient(t)

	ttl, err := client.TTL(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-2), ttl)
}

func TestKeys(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "job:1", "a", 0))
	require.NoError(t, client.Set(ctx, "job:2", "b", 0))
	require.NoError(t, client.Set(ctx, "other", "c", 0))

	keys, err := client.Keys(ctx, "job:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"job:1", "job:2"}, keys)
}

func TestRPushAndLRange(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	length, err := client.RPush(ctx, "queue", "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)

	length, err = client.RPush(ctx, "queue", "second", "third")
	require.NoError(t, err)
	assert.Equal(t, int64(3), length)

	// Insertion order is preserved.
	values, err := client.LRange(ctx, "queue", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, values)

	values, err = client.LRange(ctx, "queue", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, values)
}

func TestLRangeMissingKeyYieldsEmpty(t *testing.T) {
	client, _ := newTestClient(t)

	values, err := client.LRange(context.Background(), "no-such-list", 0, -1)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLLen(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	length, err := client.LLen(ctx, "no-such-list")
	require.NoError(t, err)
	assert.Equal(t, int64(0), length)

	_, err = client.RPush(ctx, "list", "a", "b")
	require.NoError(t, err)

	length, err = client.LLen(ctx, "list")
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	client, _ := newTestClient(t)

	receivers, err := client.Publish(context.Background(), "events", "payload")
	require.NoError(t, err)
	assert.Equal(t, int64(0), receivers)
}

func TestPublishSubscribe(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	pubsub, err := client.Subscribe(ctx, "events")
	require.NoError(t, err)
	defer pubsub.Close()

	// Wait for the subscription confirmation so the publish below is
	// guaranteed to find a subscriber.
	_, err = pubsub.Receive(ctx)
	require.NoError(t, err)

	receivers, err := client.Publish(ctx, "events", "payload")
	require.NoError(t, err)
	assert.Equal(t, int64(1), receivers)

	select {
	case msg := <-pubsub.Channel():
		assert.Equal(t, "events", msg.Channel)
		assert.Equal(t, "payload", msg.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestOperationsAfterConnectionFailureReturnConnectionError(t *testing.T) {
	client, err := NewClient(Config{
		URL:                 "redis://127.0.0.1:1",
		DialTimeout:         100 * time.Millisecond,
		ConnectAttempts:     1,
		HealthCheckInterval: -1,
	})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	_, err = client.Get(ctx, "key")
	assert.True(t, IsConnectionError(err))

	err = client.Set(ctx, "key", "value", 0)
	assert.True(t, IsConnectionError(err))

	_, err = client.RPush(ctx, "list", "value")
	assert.True(t, IsConnectionError(err))

	_, err = client.Subscribe(ctx, "events")
	assert.True(t, IsConnectionError(err))
}
