package anpp

// HeaderSize is the encoded size of a packet header.
const HeaderSize = 5

// MaxPacketSize is the maximum encoded packet size, header included.
const MaxPacketSize = 256 + HeaderSize

// Header is the 5-byte framing prefix of every packet.
type Header struct {
	HeaderChecksum byte
	PacketID       byte
	PayloadLength  byte
	ChecksumLSB    byte
	ChecksumMSB    byte
}

// NewHeader builds a self-consistent header for a payload about to be
// sent. The caller guarantees len(payload) <= 255.
func NewHeader(packetID byte, payload []byte) Header {
	crc := CRC(payload)
	h := Header{
		PacketID:      packetID,
		PayloadLength: byte(len(payload)),
		ChecksumLSB:   byte(crc),
		ChecksumMSB:   byte(crc >> 8),
	}
	h.HeaderChecksum = h.lrc()
	return h
}

// HeaderFromBytes reads a header from the first HeaderSize bytes of b.
func HeaderFromBytes(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, &SizeError{Name: "Header", Len: len(b)}
	}
	return Header{b[0], b[1], b[2], b[3], b[4]}, nil
}

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	return []byte{h.HeaderChecksum, h.PacketID, h.PayloadLength, h.ChecksumLSB, h.ChecksumMSB}
}

// PacketLength returns the encoded size of header plus payload.
func (h Header) PacketLength() int {
	return HeaderSize + int(h.PayloadLength)
}

// lrc is the longitudinal redundancy check over the other four header
// bytes, with 8-bit wraparound.
func (h Header) lrc() byte {
	return ((h.PacketID + h.PayloadLength + h.ChecksumLSB + h.ChecksumMSB) ^ 0xFF) + 1
}

// IsValid recomputes the header checksum and compares it against the
// received one.
func (h Header) IsValid() bool {
	return h.HeaderChecksum == h.lrc()
}

// IsPacketValid reports whether payload is the byte run this header
// announced. A length mismatch fails before the checksum is computed,
// so the two failure modes stay distinct.
func (h Header) IsPacketValid(payload []byte) bool {
	if int(h.PayloadLength) != len(payload) {
		return false
	}
	crc := CRC(payload)
	return h.ChecksumLSB == byte(crc) && h.ChecksumMSB == byte(crc>>8)
}
