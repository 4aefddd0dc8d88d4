package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got []any
	_, err := b.Subscribe("test.event", func(e Event) error {
		got = append(got, e.Data())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("test.event", "tester", 123)))
	require.NoError(t, b.Publish(NewEvent("other.event", "tester", 456)))
	assert.Equal(t, []any{123}, got)
}

func TestDeliveryOrderFollowsSubscription(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 3; i++ {
		_, err := b.Subscribe("ev", func(Event) error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}
	require.NoError(t, b.Publish(NewEvent("ev", "src", nil)))
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("x", func(Event) error { return errA })
	_, _ = b.Subscribe("x", func(Event) error { return nil })
	_, _ = b.Subscribe("x", func(Event) error { return errB })

	err := b.Publish(NewEvent("x", "src", nil))
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	err = b.PublishBatch(NewEvent("x", "src", 1), NewEvent("y", "src", 2))
	assert.ErrorIs(t, err, errA)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	sub, err := b.Subscribe("e", func(Event) error { calls++; return nil })
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID())
	assert.Equal(t, 1, b.SubscriberCount("e"))

	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	assert.False(t, sub.IsActive())
	assert.Zero(t, b.SubscriberCount("e"))

	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Zero(t, calls)
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestSubscribeNilHandler(t *testing.T) {
	_, err := New().Subscribe("e", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}
