package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

func TestChannelName(t *testing.T) {
	assert.Equal(t, "text_streams:tenant-1", ChannelName("tenant-1"))
}

type RedisPubSubTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	pubsub *RedisPubSub
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *RedisPubSubTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr(), Protocol: 2})
	s.pubsub = NewRedisPubSub(s.client, logger.NewNopLogger())
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *RedisPubSubTestSuite) TearDownTest() {
	s.cancel()
	s.pubsub.Close()
	_ = s.client.Close()
}

func TestRedisPubSub(t *testing.T) {
	suite.Run(t, new(RedisPubSubTestSuite))
}

type eventSink struct {
	mu     sync.Mutex
	events []dto.TextStreamEvent
}

func (e *eventSink) add(event *dto.TextStreamEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, *event)
}

func (e *eventSink) snapshot() []dto.TextStreamEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]dto.TextStreamEvent(nil), e.events...)
}

// waitForSubscriber blocks until the channel has a subscriber, so a publish is not lost
func (s *RedisPubSubTestSuite) waitForSubscriber(tenantID string) {
	s.Require().Eventually(func() bool {
		return s.mr.PubSubNumSub(ChannelName(tenantID))[ChannelName(tenantID)] > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *RedisPubSubTestSuite) TestPublishReachesTenantSubscriber() {
	// Arrange
	tenant1, tenant2 := new(eventSink), new(eventSink)
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-1", tenant1.add))
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-2", tenant2.add))
	s.waitForSubscriber("tenant-1")
	s.waitForSubscriber("tenant-2")

	// Act
	err := s.pubsub.Publish(s.ctx, &dto.TextStreamEvent{TenantID: "tenant-1", StreamID: "stream-1", Chunk: "hello", Status: "streaming"})

	// Assert
	s.Require().NoError(err)
	s.Eventually(func() bool { return len(tenant1.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := tenant1.snapshot()[0]
	s.Equal("stream-1", got.StreamID)
	s.Equal("hello", got.Chunk)
	s.Empty(tenant2.snapshot())
}

func (s *RedisPubSubTestSuite) TestSubscribeTwiceKeepsOneSubscription() {
	sink := new(eventSink)
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-1", sink.add))
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-1", sink.add))
	s.waitForSubscriber("tenant-1")

	s.Require().NoError(s.pubsub.Publish(s.ctx, &dto.TextStreamEvent{TenantID: "tenant-1", StreamID: "stream-1"}))

	s.Eventually(func() bool { return len(sink.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Never(func() bool { return len(sink.snapshot()) > 1 }, 200*time.Millisecond, 20*time.Millisecond)
}

func (s *RedisPubSubTestSuite) TestMalformedPayloadIsSkipped() {
	sink := new(eventSink)
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-1", sink.add))
	s.waitForSubscriber("tenant-1")

	s.mr.Publish(ChannelName("tenant-1"), "not json")
	s.Require().NoError(s.pubsub.Publish(s.ctx, &dto.TextStreamEvent{TenantID: "tenant-1", StreamID: "stream-2"}))

	s.Eventually(func() bool { return len(sink.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Equal("stream-2", sink.snapshot()[0].StreamID)
}

func (s *RedisPubSubTestSuite) TestUnsubscribeStopsDelivery() {
	sink := new(eventSink)
	s.Require().NoError(s.pubsub.Subscribe(s.ctx, "tenant-1", sink.add))
	s.waitForSubscriber("tenant-1")

	s.pubsub.Unsubscribe("tenant-1")
	s.Eventually(func() bool {
		return s.mr.PubSubNumSub(ChannelName("tenant-1"))[ChannelName("tenant-1")] == 0
	}, 2*time.Second, 10*time.Millisecond)

	s.Require().NoError(s.pubsub.Publish(s.ctx, &dto.TextStreamEvent{TenantID: "tenant-1", StreamID: "stream-1"}))
	s.Never(func() bool { return len(sink.snapshot()) > 0 }, 200*time.Millisecond, 20*time.Millisecond)
}

func TestPublish_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), Protocol: 2, MaxRetries: -1})
	defer client.Close()
	mr.Close()

	err := NewRedisPubSub(client, logger.NewNopLogger()).Publish(context.Background(), &dto.TextStreamEvent{TenantID: "tenant-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text_streams:tenant-1")
}
