package anpp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scriptTransport replays a fixed sequence of packets and records
// everything written to it. Once the script runs out it reports
// ErrTimeout like a silent device would.
type scriptTransport struct {
	written [][]byte
	script  []scriptPacket
}

type scriptPacket struct {
	id      byte
	payload []byte
}

func (s *scriptTransport) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)
	s.written = append(s.written, buf)
	return len(p), nil
}

func (s *scriptTransport) ReadPacket(deadline Deadline) (byte, []byte, error) {
	if deadline.Expired() || len(s.script) == 0 {
		return 0, nil, ErrTimeout
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.id, next.payload, nil
}

func ackFor(h Header, result AckResult) scriptPacket {
	return scriptPacket{IDAcknowledge, []byte{h.PacketID, h.ChecksumLSB, h.ChecksumMSB, byte(result)}}
}

func TestSendPacket(t *testing.T) {
	tr := &scriptTransport{}
	h, err := SendPacket(tr, BootMode{Mode: BootToProgram})
	require.NoError(t, err)
	require.Equal(t, IDBootMode, h.PacketID)
	require.Len(t, tr.written, 1)
	require.Equal(t, append(h.Bytes(), BootToProgram), tr.written[0])
}

func TestWaitForPacket(t *testing.T) {
	tr := &scriptTransport{script: []scriptPacket{
		{IDUnixTime, []byte{1, 0, 0, 0, 2, 0, 0, 0}},
		{IDStatus, []byte{0x01, 0x02, 0x03, 0x04}},
	}}
	var status Status
	require.NoError(t, WaitForPacket(tr, &status, NoDeadline()))
	require.Equal(t, uint16(0x0201), status.SystemStatus)
}

func TestWaitForPacketTimesOut(t *testing.T) {
	// A device chattering on another packet id must not keep the wait
	// alive past the deadline.
	script := make([]scriptPacket, 1000)
	for i := range script {
		script[i] = scriptPacket{IDUnixTime, []byte{1, 0, 0, 0, 2, 0, 0, 0}}
	}
	tr := &scriptTransport{script: script}
	var status Status
	err := WaitForPacket(tr, &status, DeadlineAfter(time.Microsecond))
	require.Equal(t, ErrTimeout, err)
}

func TestWaitForPacketBadPayload(t *testing.T) {
	tr := &scriptTransport{script: []scriptPacket{
		{IDStatus, []byte{0x01, 0x02}},
	}}
	var status Status
	err := WaitForPacket(tr, &status, NoDeadline())
	require.Error(t, err)
	require.IsType(t, &SizeError{}, err)
}

func TestWaitForAck(t *testing.T) {
	sent := NewHeader(IDPacketTimerPeriod, []byte{0, 1, 0x10, 0x27})
	other := NewHeader(IDPacketPeriods, []byte{0, 0})
	tr := &scriptTransport{script: []scriptPacket{
		{IDUnixTime, []byte{1, 0, 0, 0, 2, 0, 0, 0}},
		ackFor(other, AckSuccess),
		ackFor(sent, AckFailedOutOfRange),
	}}
	ack, err := WaitForAck(tr, sent, NoDeadline())
	require.NoError(t, err)
	require.True(t, ack.Matches(sent))
	require.Equal(t, AckFailedOutOfRange, ack.Result)
}

func TestWaitForAckTimesOut(t *testing.T) {
	tr := &scriptTransport{}
	_, err := WaitForAck(tr, NewHeader(IDPacketPeriods, nil), DeadlineAfter(time.Microsecond))
	require.Equal(t, ErrTimeout, err)
}

func TestSendAndValidate(t *testing.T) {
	pkt := PacketTimerPeriod{UTCSynchronization: 1, Period: 10000}
	payload, err := pkt.MarshalBinary()
	require.NoError(t, err)
	h := NewHeader(IDPacketTimerPeriod, payload)

	tr := &scriptTransport{script: []scriptPacket{ackFor(h, AckSuccess)}}
	require.NoError(t, SendAndValidate(tr, pkt, NoDeadline()))
	require.Len(t, tr.written, 1)
}

func TestSendAndValidateRejected(t *testing.T) {
	pkt := BootMode{Mode: BootToBootloader}
	h := NewHeader(IDBootMode, []byte{BootToBootloader})

	tr := &scriptTransport{script: []scriptPacket{ackFor(h, AckFailedUnknownPacket)}}
	err := SendAndValidate(tr, pkt, NoDeadline())
	require.Error(t, err)
	ackErr, ok := err.(*AckError)
	require.True(t, ok)
	require.Equal(t, AckFailedUnknownPacket, ackErr.Ack.Result)
	require.True(t, ackErr.Ack.IsProtocolError())
}
