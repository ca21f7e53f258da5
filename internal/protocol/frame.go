// Package protocol implements the wire contract between server and clients
// (spec §4.G, §6): a length-delimited framed transport carrying hand-rolled
// binary encodings of Action, Event, and DumpResponse messages.
//
// original_source's equivalent (src/net/proto/*) generates this layer from
// a protobuf schema over tonic/gRPC (see src/net/server/grpc.rs). protoc
// code generation isn't available in this environment, so this is a
// deliberate simplification: a fixed tagged-union binary format over a
// plain length-prefixed frame, in the spirit of the socket framing
// randomizedcoder-go-ffmpeg-hls-swarm/internal/parser/socket_reader.go uses
// for its own line-oriented protocol, adapted here to binary messages.
package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxFrameSize bounds a single frame's payload, guarding against a
// corrupt or hostile length prefix causing an unbounded allocation.
const MaxFrameSize = 1 << 20 // 1 MiB

// WriteFrame writes payload to w prefixed with its big-endian uint32
// length.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("protocol: frame payload of %d bytes exceeds max %d", len(payload), MaxFrameSize)
	}
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("protocol: writing frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("protocol: writing frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame from r. It returns io.EOF
// unmodified when r is exhausted before a header is read, so callers can
// treat it the same way as a closed connection.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("protocol: truncated frame header: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	size := binary.BigEndian.Uint32(hdr[:])
	if size > MaxFrameSize {
		return nil, fmt.Errorf("protocol: frame of %d bytes exceeds max %d", size, MaxFrameSize)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("protocol: reading frame payload: %w", err)
	}
	return payload, nil
}
