// Package eventsink publishes structured protocol events (one per
// dispatched message) to an MQTT broker, or discards them if none is
// configured.
package eventsink

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Event is one published fact about protocol traffic.
type Event struct {
	Direction   string `json:"direction"` // "inbound" or "outbound"
	MessageID   uint32 `json:"message_id"`
	MessageName string `json:"message_name"`
	Summary     string `json:"summary"`
	Timestamp   int64  `json:"timestamp"`
}

// Sink publishes Events. Publish is used by internal/dispatch via a
// narrower adapter (see Adapter below); PublishEvent is the richer entry
// point callers with a full Event already in hand should use.
type Sink interface {
	PublishEvent(event Event) error
}

// NullSink discards every event. It is the default so the dispatcher's
// observability call is never required to reach a real broker.
type NullSink struct{}

func (NullSink) PublishEvent(Event) error { return nil }

// MQTTSink publishes JSON-encoded events to a per-message-kind topic
// (peerd/<message_name>) on a broker, grounded on this codebase's original
// MQTT publisher (client id, keepalive, QoS 0, fire-and-forget token wait).
type MQTTSink struct {
	client mqtt.Client
}

// NewMQTTSink connects to brokerURL (e.g. "tcp://localhost:1883") and returns
// a Sink backed by it.
func NewMQTTSink(brokerURL string) (*MQTTSink, error) {
	clientID := fmt.Sprintf("peerd-%d", rand.Int())

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetKeepAlive(60 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.WaitTimeout(3*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("eventsink: connect to %s: %w", brokerURL, token.Error())
	}
	return &MQTTSink{client: client}, nil
}

func (s *MQTTSink) PublishEvent(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("eventsink: marshal event: %w", err)
	}
	topic := "peerd/" + event.MessageName
	if token := s.client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
		return fmt.Errorf("eventsink: publish to %s: %w", topic, token.Error())
	}
	return nil
}

// Adapter narrows a Sink down to the Publish(messageName, summary string)
// shape internal/dispatch expects, filling in Direction/MessageID/Timestamp
// with sensible defaults for call sites that only have a name and a summary.
type Adapter struct {
	Sink Sink
}

func (a Adapter) Publish(messageName, summary string) {
	_ = a.Sink.PublishEvent(Event{
		Direction:   "inbound",
		MessageName: messageName,
		Summary:     summary,
		Timestamp:   time.Now().UTC().UnixMicro(),
	})
}
