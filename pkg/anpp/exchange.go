package anpp

import "io"

// Transport is a source and sink of whole packets. ReadPacket returns
// the next checksum-valid packet from the stream; it returns
// ErrTimeout when the deadline passes first. Write sends raw encoded
// bytes.
type Transport interface {
	io.Writer
	ReadPacket(deadline Deadline) (id byte, payload []byte, err error)
}

// SendPacket encodes pkt and writes the framed bytes to t. The header
// of the sent packet is returned so the caller can match a later
// Acknowledge against it.
func SendPacket(t Transport, pkt Outgoing) (Header, error) {
	payload, err := pkt.MarshalBinary()
	if err != nil {
		return Header{}, err
	}
	h := NewHeader(pkt.PacketID(), payload)
	buf := make([]byte, 0, h.PacketLength())
	buf = append(buf, h.Bytes()...)
	buf = append(buf, payload...)
	if _, err = t.Write(buf); err != nil {
		return Header{}, err
	}
	return h, nil
}

// WaitForPacket reads packets from t until one carries the id of pkt,
// then decodes it into pkt. Packets with other ids are discarded. It
// returns ErrTimeout when the deadline expires first; pkt is left
// untouched on any error.
func WaitForPacket(t Transport, pkt Incoming, deadline Deadline) error {
	want := pkt.PacketID()
	for {
		if deadline.Expired() {
			return ErrTimeout
		}
		id, payload, err := t.ReadPacket(deadline)
		if err != nil {
			return err
		}
		if id != want {
			continue
		}
		return pkt.UnmarshalBinary(payload)
	}
}

// WaitForAck reads packets from t until an Acknowledge matching sent
// arrives. Acknowledgments for other packets and non-acknowledge
// packets are discarded. The acknowledge is returned whatever its
// result; classifying it is the caller's concern.
func WaitForAck(t Transport, sent Header, deadline Deadline) (Acknowledge, error) {
	var ack Acknowledge
	for {
		if deadline.Expired() {
			return Acknowledge{}, ErrTimeout
		}
		id, payload, err := t.ReadPacket(deadline)
		if err != nil {
			return Acknowledge{}, err
		}
		if id != IDAcknowledge {
			continue
		}
		if err = ack.UnmarshalBinary(payload); err != nil {
			return Acknowledge{}, err
		}
		if ack.Matches(sent) {
			return ack, nil
		}
	}
}

// SendAndValidate sends pkt and waits for its Acknowledge. A
// non-success result is returned as an *AckError.
func SendAndValidate(t Transport, pkt Outgoing, deadline Deadline) error {
	h, err := SendPacket(t, pkt)
	if err != nil {
		return err
	}
	ack, err := WaitForAck(t, h, deadline)
	if err != nil {
		return err
	}
	if !ack.IsSuccess() {
		return &AckError{Ack: ack}
	}
	return nil
}
