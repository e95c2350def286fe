package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	kafkamocks "github.com/honeynil/DepositWithdrawService/internal/infrastructure/kafka/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, msg RetryMessage) []byte {
	t.Helper()
	b, err := json.Marshal(msg)
	require.NoError(t, err)
	return b
}

func newTestConsumer(mailer Mailer, queue *kafkamocks.MockKafkaProducer, now time.Time) (*RetryConsumer, *[]time.Duration) {
	c := NewRetryConsumer(mailer, queue, "retry", 3, time.Second)
	c.now = func() time.Time { return now }
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestRetryConsumer_Handle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)

	t.Run("WaitsThenSends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		c, slept := newTestConsumer(mailer, kafkamocks.NewMockKafkaProducer(ctrl), now)

		msg := RetryMessage{To: "a@x.com", Subject: "s", Body: "b", Attempt: 1, NotBefore: now.Add(4 * time.Second)}
		require.NoError(t, c.Handle(ctx, nil, encode(t, msg)))
		assert.Equal(t, []time.Duration{4 * time.Second}, *slept)
		assert.Equal(t, 1, mailer.count("a@x.com"))
	})

	t.Run("DueMessageDoesNotSleep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		c, slept := newTestConsumer(mailer, kafkamocks.NewMockKafkaProducer(ctrl), now)

		require.NoError(t, c.Handle(ctx, nil, encode(t, RetryMessage{To: "a@x.com", Attempt: 2, NotBefore: now.Add(-time.Minute)})))
		assert.Empty(t, *slept)
	})

	t.Run("FailureRequeuesWithNextAttempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		mailer.fail["a@x.com"] = errors.New("still down")
		queue := kafkamocks.NewMockKafkaProducer(ctrl)
		c, _ := newTestConsumer(mailer, queue, now)

		queue.EXPECT().Send(gomock.Any(), "retry", "a@x.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, value []byte) error {
				var next RetryMessage
				require.NoError(t, json.Unmarshal(value, &next))
				assert.Equal(t, 2, next.Attempt)
				assert.True(t, next.NotBefore.Equal(now.Add(4*time.Second)))
				assert.Equal(t, "req-1", next.RequestID)
				return nil
			})

		msg := RetryMessage{To: "a@x.com", Attempt: 1, RequestID: "req-1"}
		assert.NoError(t, c.Handle(ctx, nil, encode(t, msg)))
	})

	t.Run("DeadLetterAfterMaxAttempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		mailer.fail["a@x.com"] = errors.New("still down")
		c, _ := newTestConsumer(mailer, kafkamocks.NewMockKafkaProducer(ctrl), now)

		assert.NoError(t, c.Handle(ctx, nil, encode(t, RetryMessage{To: "a@x.com", Attempt: 3})))
	})

	t.Run("RequeueFailureIsReturned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		mailer.fail["a@x.com"] = errors.New("still down")
		queue := kafkamocks.NewMockKafkaProducer(ctrl)
		c, _ := newTestConsumer(mailer, queue, now)

		queue.EXPECT().Send(gomock.Any(), "retry", "a@x.com", gomock.Any()).Return(errors.New("no brokers"))
		assert.Error(t, c.Handle(ctx, nil, encode(t, RetryMessage{To: "a@x.com", Attempt: 1})))
	})

	t.Run("InterruptedWaitPutsMessageBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := newStubMailer()
		queue := kafkamocks.NewMockKafkaProducer(ctrl)
		c, _ := newTestConsumer(mailer, queue, now)
		c.sleep = func(context.Context, time.Duration) error { return context.Canceled }

		msg := RetryMessage{To: "a@x.com", Attempt: 2, NotBefore: now.Add(time.Minute)}
		queue.EXPECT().Send(gomock.Any(), "retry", "a@x.com", encode(t, msg)).Return(nil)

		err := c.Handle(ctx, nil, encode(t, msg))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, mailer.count("a@x.com"))
	})

	t.Run("Malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, _ := newTestConsumer(newStubMailer(), kafkamocks.NewMockKafkaProducer(ctrl), now)
		assert.Error(t, c.Handle(ctx, nil, []byte("{")))
	})
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
