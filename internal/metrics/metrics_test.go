package metrics

import (
	"errors"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "error", Outcome(errors.New("x")))
}

func TestEventType(t *testing.T) {
	assert.Equal(t, "event.created", EventType("event.created", "event.created", "event.deleted"))
	assert.Equal(t, "other", EventType("junk-1", "event.created", "event.deleted"))
	assert.Equal(t, "other", EventType(""))
}

func TestWebhookEventsCounter(t *testing.T) {
	counter := WebhookEvents.WithLabelValues("stripe", "test.event", "ignored")

	read := func() float64 {
		m := &dto.Metric{}
		require.NoError(t, counter.Write(m))
		return m.GetCounter().GetValue()
	}

	before := read()
	counter.Inc()
	assert.Equal(t, before+1, read())
}
