// Package telemetry publishes device packets to an MQTT broker.
package telemetry

// Decoded packets are serialized as JSON and published on one topic
// per packet kind under a configurable prefix, so dashboards and
// loggers can subscribe to exactly the signals they care about.
