package eventsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []Event
}

func (r *recordingSink) PublishEvent(event Event) error {
	r.events = append(r.events, event)
	return nil
}

func TestNullSinkDiscardsEvents(t *testing.T) {
	var s NullSink
	require.NoError(t, s.PublishEvent(Event{MessageName: "hello"}))
}

func TestAdapterFillsEventFromMessageNameAndSummary(t *testing.T) {
	rec := &recordingSink{}
	adapter := Adapter{Sink: rec}

	adapter.Publish("hello", "dispatched hello: ok")

	require.Len(t, rec.events, 1)
	assert.Equal(t, "hello", rec.events[0].MessageName)
	assert.Equal(t, "dispatched hello: ok", rec.events[0].Summary)
	assert.NotZero(t, rec.events[0].Timestamp)
}
