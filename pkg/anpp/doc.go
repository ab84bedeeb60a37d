// Package anpp implements the Advanced Navigation Packet Protocol.
package anpp

// ANPP is the request/response protocol spoken by Advanced Navigation
// inertial navigation units over a byte-oriented serial link.
//
// Every packet is a 5-byte header followed by up to 255 payload bytes.
// The header carries the packet id, the payload length, a CRC-CCITT
// over the payload and an LRC over the header itself, so a receiver can
// resynchronize on arbitrary garbage in the raw stream.
//
// This package covers the wire format only: checksums, the header
// codec, one codec per catalog packet, acknowledge matching and the
// deadline-bounded send/wait exchange primitives. Moving raw bytes and
// extracting packet boundaries from the stream is the job of a
// Transport implementation (see package transport).
//
// Producer: the navigation unit
// Consumer: host-side drivers and tooling
