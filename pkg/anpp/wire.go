package anpp

import (
	"encoding/binary"
	"math"
)

// All multi-byte fields on the wire are little-endian. Floating-point
// fields are the IEEE-754 encoding in the same byte order.

func getF32(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}

func getF64(p []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p))
}

func putF32(p []byte, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}

func putF64(p []byte, v float64) {
	binary.LittleEndian.PutUint64(p, math.Float64bits(v))
}
