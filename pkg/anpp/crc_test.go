package anpp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC(t *testing.T) {
	testCases := []struct {
		name   string
		data   []byte
		expect uint16
	}{
		{"empty", nil, 0xFFFF},
		{"check sequence", []byte("123456789"), 0x29B1},
		{"digits", []byte("0123456"), 0x88A7},
		{"single zero byte", []byte{0}, 0xE1F0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, CRC(tc.data))
		})
	}
}

func TestCRCIsPositional(t *testing.T) {
	require.NotEqual(t, CRC([]byte{1, 2}), CRC([]byte{2, 1}))
}
