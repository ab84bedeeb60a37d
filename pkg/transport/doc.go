// Package transport moves ANPP packets over byte streams.
package transport

// A Stream wraps any byte-oriented connection (serial device node, TCP
// socket, websocket) and turns it into a packet source: it buffers raw
// bytes, locates packet boundaries with the header and payload
// checksums and discards garbage in between.
//
// Connections supporting read deadlines (net.Conn, os.File) are read
// directly with SetReadDeadline. Anything else gets a reader goroutine
// so a ReadPacket deadline can still be honored.
