package anpp

// CRC computes the 16-bit CRC-CCITT (polynomial 0x1021, initial value
// 0xFFFF) over p. The device protects every packet payload with it.
func CRC(p []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range p {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
