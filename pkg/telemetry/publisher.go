package telemetry

import (
	"encoding/json"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/anpp.go/pkg/anpp"
)

// Sink is where decoded packets are published. *Queue implements it.
type Sink interface {
	Pub(topic string, payload []byte) paho.Token
}

// packetTopics maps receivable packet ids to their telemetry topics.
// Packets without an entry are not telemetry and stay unpublished.
var packetTopics = map[byte]string{
	anpp.IDSystemState:            "state",
	anpp.IDStatus:                 "status",
	anpp.IDUnixTime:               "time",
	anpp.IDRawSensors:             "raw/sensors",
	anpp.IDRawGNSS:                "raw/gnss",
	anpp.IDSatellites:             "satellites",
	anpp.IDDetailedSatellites:     "satellites/detail",
	anpp.IDNEDVelocity:            "velocity/ned",
	anpp.IDBodyVelocity:           "velocity/body",
	anpp.IDAcceleration:           "acceleration",
	anpp.IDBodyAcceleration:       "acceleration/body",
	anpp.IDQuaternionOrientation:  "orientation",
	anpp.IDAngularVelocity:        "angular/velocity",
	anpp.IDAngularAcceleration:    "angular/acceleration",
	anpp.IDLocalMagneticField:     "magnetic-field",
	anpp.IDGeodeticPositionStdDev: "stddev/position",
	anpp.IDNEDVelocityStdDev:      "stddev/velocity",
	anpp.IDEulerOrientationStdDev: "stddev/orientation",
}

// Topic returns the telemetry topic of a packet id.
func Topic(id byte) (string, bool) {
	topic, ok := packetTopics[id]
	return topic, ok
}

// Publisher decodes raw packets and publishes them as JSON.
type Publisher struct {
	Sink Sink
}

// NewPublisher creates a Publisher on sink.
func NewPublisher(sink Sink) *Publisher {
	return &Publisher{Sink: sink}
}

// Publish decodes one raw packet and publishes it on its topic.
// Packets that are not telemetry are dropped silently; a payload that
// does not decode is an error.
func (p *Publisher) Publish(id byte, payload []byte) error {
	topic, ok := packetTopics[id]
	if !ok {
		glog.V(2).Infof("skip packet %d", id)
		return nil
	}
	pkt, err := anpp.Decode(id, payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(pkt)
	if err != nil {
		return err
	}
	glog.V(2).Infof("PUB %q", topic)
	p.Sink.Pub(topic, data)
	return nil
}
