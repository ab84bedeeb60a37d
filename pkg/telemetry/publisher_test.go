package telemetry

import (
	"encoding/json"
	"testing"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/anpp.go/pkg/anpp"
)

type fakeSink struct {
	topics   []string
	payloads [][]byte
}

func (f *fakeSink) Pub(topic string, payload []byte) paho.Token {
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return &paho.DummyToken{}
}

func TestPublisherPublish(t *testing.T) {
	sink := &fakeSink{}
	p := NewPublisher(sink)

	require.NoError(t, p.Publish(anpp.IDStatus, []byte{0x01, 0x00, 0x03, 0x00}))
	require.Equal(t, []string{"status"}, sink.topics)

	var status anpp.Status
	require.NoError(t, json.Unmarshal(sink.payloads[0], &status))
	require.Equal(t, uint16(1), status.SystemStatus)
	require.Equal(t, uint16(3), status.FilterStatus)
}

func TestPublisherSkipsNonTelemetry(t *testing.T) {
	sink := &fakeSink{}
	p := NewPublisher(sink)

	// Acknowledges belong to the command path, not telemetry.
	require.NoError(t, p.Publish(anpp.IDAcknowledge, []byte{1, 2, 3, 0}))
	require.Empty(t, sink.topics)
}

func TestPublisherRejectsBadPayload(t *testing.T) {
	sink := &fakeSink{}
	p := NewPublisher(sink)

	err := p.Publish(anpp.IDStatus, []byte{1})
	require.Error(t, err)
	require.IsType(t, &anpp.SizeError{}, err)
	require.Empty(t, sink.topics)
}
