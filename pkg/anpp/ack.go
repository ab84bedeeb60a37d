package anpp

import "fmt"

// AckResult is the device-side outcome reported in an Acknowledge.
type AckResult byte

// Acknowledge result codes.
const (
	AckSuccess                    AckResult = 0
	AckFailedPacketValidationCRC  AckResult = 1
	AckFailedPacketValidationSize AckResult = 2
	AckFailedOutOfRange           AckResult = 3
	AckFailedSystemFlashFailure   AckResult = 4
	AckFailedSystemNotReady       AckResult = 5
	AckFailedUnknownPacket        AckResult = 6
)

var ackResultNames = map[AckResult]string{
	AckSuccess:                    "success",
	AckFailedPacketValidationCRC:  "packet validation failed (CRC)",
	AckFailedPacketValidationSize: "packet validation failed (size)",
	AckFailedOutOfRange:           "value out of range",
	AckFailedSystemFlashFailure:   "system flash failure",
	AckFailedSystemNotReady:       "system not ready",
	AckFailedUnknownPacket:        "unknown packet",
}

// String implements fmt.Stringer.
func (r AckResult) String() string {
	if name, ok := ackResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result %d", byte(r))
}

// AcknowledgeSize is the fixed payload size of an Acknowledge.
const AcknowledgeSize = 4

// Acknowledge is the reply the device sends after processing a packet.
// It correlates to the sent packet by id and payload checksum; the
// protocol has no sequence numbers.
type Acknowledge struct {
	AckedPacketID    byte
	AckedChecksumLSB byte
	AckedChecksumMSB byte
	Result           AckResult
}

// PacketID implements Payload.
func (Acknowledge) PacketID() byte { return IDAcknowledge }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Acknowledge) UnmarshalBinary(p []byte) error {
	if len(p) != AcknowledgeSize {
		return &SizeError{Name: "Acknowledge", Len: len(p)}
	}
	a.AckedPacketID = p[0]
	a.AckedChecksumLSB = p[1]
	a.AckedChecksumMSB = p[2]
	a.Result = AckResult(p[3])
	return nil
}

// Matches reports whether this acknowledgment refers to the packet sent
// with header h. All three identifying fields must be equal.
func (a Acknowledge) Matches(h Header) bool {
	return a.AckedPacketID == h.PacketID &&
		a.AckedChecksumLSB == h.ChecksumLSB &&
		a.AckedChecksumMSB == h.ChecksumMSB
}

// IsSuccess reports whether the device accepted the packet.
func (a Acknowledge) IsSuccess() bool {
	return a.Result == AckSuccess
}

// IsPacketValidationFailure reports whether the device could not
// validate the packet (CRC or size).
func (a Acknowledge) IsPacketValidationFailure() bool {
	return a.Result == AckFailedPacketValidationCRC ||
		a.Result == AckFailedPacketValidationSize
}

// IsProtocolError reports an out-of-range or unknown-packet result.
// Validation failures are excluded: they may be a communication fault
// rather than a host-side logic error. Check the acknowledge against
// the sent header with Matches to tell the two apart.
func (a Acknowledge) IsProtocolError() bool {
	return a.Result == AckFailedOutOfRange ||
		a.Result == AckFailedUnknownPacket
}

// IsSystemError reports a failure on the device side.
func (a Acknowledge) IsSystemError() bool {
	return a.Result == AckFailedSystemFlashFailure
}

// IsNotReady reports that the device cannot process the packet yet.
func (a Acknowledge) IsNotReady() bool {
	return a.Result == AckFailedSystemNotReady
}
