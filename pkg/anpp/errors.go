package anpp

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the deadline expired before a matching
	// packet arrived.
	ErrTimeout = errors.New("timed out waiting for a packet")
	// ErrUnknownPacket indicates a packet id outside the catalog.
	ErrUnknownPacket = errors.New("unknown packet id")
)

// SizeError reports a payload whose length does not fit the packet type
// it was decoded as. The payload is left untouched.
type SizeError struct {
	Name string
	Len  int
}

// Error implements error.
func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: payload size %d does not match the packet layout", e.Name, e.Len)
}

// AckError reports a matching Acknowledge whose result was not success.
// It carries the full Acknowledge for classification.
type AckError struct {
	Ack Acknowledge
}

// Error implements error.
func (e *AckError) Error() string {
	return fmt.Sprintf("packet %d rejected by the device: %s", e.Ack.AckedPacketID, e.Ack.Result)
}
