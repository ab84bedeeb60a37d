package transport

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/anpp.go/pkg/anpp"
)

const readChunkSize = anpp.MaxPacketSize

type deadlineReader interface {
	SetReadDeadline(time.Time) error
}

// Stream reads ANPP packets out of a raw byte stream. It implements
// anpp.Transport.
//
// A Stream is not safe for concurrent ReadPacket calls; writes are
// passed through to the underlying connection unsynchronized, matching
// the request/response discipline of the protocol.
type Stream struct {
	rw io.ReadWriter

	// direct is set when rw supports SetReadDeadline, in which case
	// reads happen on the caller's goroutine. Otherwise the reader
	// goroutine owns rw.Read and fill selects on its channels.
	direct bool

	buf     []byte
	skipped int

	startReader sync.Once
	chunks      chan []byte
	errCh       chan error
	done        chan struct{}
	closeOnce   sync.Once
}

// NewStream wraps rw into a packet stream.
func NewStream(rw io.ReadWriter) *Stream {
	s := &Stream{
		rw:     rw,
		chunks: make(chan []byte),
		errCh:  make(chan error, 1),
		done:   make(chan struct{}),
	}
	_, s.direct = rw.(deadlineReader)
	return s
}

// Write sends raw bytes to the underlying connection.
func (s *Stream) Write(p []byte) (int, error) {
	return s.rw.Write(p)
}

// ReadPacket returns the next packet whose header and payload checksums
// both verify. Bytes that do not parse are dropped one at a time until
// the stream resynchronizes. It returns anpp.ErrTimeout when the
// deadline passes first.
func (s *Stream) ReadPacket(deadline anpp.Deadline) (byte, []byte, error) {
	for {
		if id, payload, ok := s.extract(); ok {
			return id, payload, nil
		}
		if deadline.Expired() {
			return 0, nil, anpp.ErrTimeout
		}
		if err := s.fill(deadline); err != nil {
			return 0, nil, err
		}
	}
}

// Close closes the underlying connection when it is closable and stops
// the reader goroutine.
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if c, ok := s.rw.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

// extract scans the buffer for the next complete packet. A valid
// header announcing more bytes than buffered means a packet is still
// in flight, so scanning stops there until more data arrives.
func (s *Stream) extract() (byte, []byte, bool) {
	for len(s.buf) >= anpp.HeaderSize {
		h, _ := anpp.HeaderFromBytes(s.buf)
		if !h.IsValid() {
			s.drop()
			continue
		}
		packetLen := h.PacketLength()
		if len(s.buf) < packetLen {
			return 0, nil, false
		}
		payload := s.buf[anpp.HeaderSize:packetLen]
		if !h.IsPacketValid(payload) {
			s.drop()
			continue
		}
		out := make([]byte, len(payload))
		copy(out, payload)
		s.buf = s.buf[packetLen:]
		if s.skipped > 0 {
			glog.Warningf("dropped %d bytes resynchronizing the stream", s.skipped)
			s.skipped = 0
		}
		glog.V(2).Infof("RCV packet %d (%d bytes)", h.PacketID, len(out))
		return h.PacketID, out, true
	}
	return 0, nil, false
}

func (s *Stream) drop() {
	s.buf = s.buf[1:]
	s.skipped++
}

func (s *Stream) fill(deadline anpp.Deadline) error {
	if s.direct {
		return s.fillDirect(deadline)
	}
	return s.fillFromReader(deadline)
}

func (s *Stream) fillDirect(deadline anpp.Deadline) error {
	conn := s.rw.(deadlineReader)
	t, _ := deadline.Time()
	if err := conn.SetReadDeadline(t); err != nil {
		return err
	}
	buf := make([]byte, readChunkSize)
	n, err := s.rw.Read(buf)
	if n > 0 {
		s.buf = append(s.buf, buf[:n]...)
	}
	if err != nil {
		if os.IsTimeout(err) {
			if n > 0 {
				return nil
			}
			return anpp.ErrTimeout
		}
		return err
	}
	return nil
}

func (s *Stream) fillFromReader(deadline anpp.Deadline) error {
	s.startReader.Do(func() { go s.readLoop() })
	var expired <-chan time.Time
	if left, ok := deadline.Remaining(); ok {
		if left <= 0 {
			return anpp.ErrTimeout
		}
		timer := time.NewTimer(left)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case chunk := <-s.chunks:
		s.buf = append(s.buf, chunk...)
		return nil
	case err := <-s.errCh:
		return err
	case <-expired:
		return anpp.ErrTimeout
	case <-s.done:
		return io.ErrClosedPipe
	}
}

func (s *Stream) readLoop() {
	for {
		buf := make([]byte, readChunkSize)
		n, err := s.rw.Read(buf)
		if n > 0 {
			select {
			case s.chunks <- buf[:n]:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case s.errCh <- err:
			case <-s.done:
			}
			return
		}
	}
}
