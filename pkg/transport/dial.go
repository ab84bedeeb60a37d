package transport

import (
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/net/websocket"
)

// Dial connects to a device by URL and wraps the connection into a
// Stream. Supported forms:
//
//	tcp://host:port    TCP socket, e.g. a serial-over-ethernet bridge
//	ws://host/path     websocket (also wss://)
//	/dev/ttyUSB0       local device node or FIFO
func Dial(target string) (*Stream, error) {
	switch {
	case strings.HasPrefix(target, "tcp://"):
		conn, err := net.Dial("tcp", target[len("tcp://"):])
		if err != nil {
			return nil, err
		}
		return NewStream(conn), nil
	case strings.HasPrefix(target, "ws://"), strings.HasPrefix(target, "wss://"):
		conn, err := websocket.Dial(target, "", "http://localhost/")
		if err != nil {
			return nil, err
		}
		conn.PayloadType = websocket.BinaryFrame
		return NewStream(conn), nil
	case strings.Contains(target, "://"):
		return nil, fmt.Errorf("unsupported device URL %q", target)
	default:
		f, err := os.OpenFile(target, os.O_RDWR, 0)
		if err != nil {
			return nil, err
		}
		return NewStream(f), nil
	}
}
