package server

import (
	"context"
	"errors"
	"io"
	"net"

	goerrors "github.com/go-errors/errors"

	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/session"
)

// handleConnection implements one connection task (spec §4.H, §5): send an
// initial Dump, then select cooperatively between decoding inbound frames
// into actions and forwarding broadcast events outbound, until either side
// errors or ctx is cancelled. Errors are logged and terminate only this
// connection.
func (s *Server) handleConnection(ctx context.Context, connID string, conn net.Conn) {
	defer conn.Close()
	log := s.Log.With("connection_id", connID, "remote_addr", conn.RemoteAddr())
	log.Info("connection accepted")

	if s.Metrics != nil {
		s.Metrics.clientConnected()
		defer s.Metrics.clientDisconnected()
	}

	events, unsubscribe := s.Broadcast.Subscribe(connID)
	defer unsubscribe()

	reply := make(chan *session.Dump, 1)
	if !s.submit(ctx, session.DumpAction{}, reply) {
		return
	}
	var dump *session.Dump
	select {
	case dump = <-reply:
	case <-ctx.Done():
		return
	}
	if dump == nil {
		log.Warn("session closed before initial dump")
		return
	}
	resp := protocol.DumpResponse{ServerIdent: s.ServerIdent, Version: s.Version, Dump: *dump}
	if err := protocol.WriteFrame(conn, protocol.EncodeDumpResponse(resp)); err != nil {
		log.Error("write initial dump failed", "error", goerrors.Wrap(err, 0))
		return
	}

	inbound := make(chan session.Action)
	readErrs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go s.readActions(conn, inbound, readErrs, done)

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-readErrs:
			if err != nil && !errors.Is(err, io.EOF) {
				log.Warn("connection read failed", "error", goerrors.Wrap(err, 0))
			}
			return
		case a := <-inbound:
			if !s.submit(ctx, a, nil) {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := protocol.WriteFrame(conn, protocol.EncodeEvent(ev)); err != nil {
				log.Warn("connection write failed", "error", goerrors.Wrap(err, 0))
				return
			}
		}
	}
}

// readActions decodes frames from conn into actions, forwarding each to out
// until a read or decode error terminates the loop, or done is closed by
// the owning connection task (so a send racing with shutdown can't leak
// this goroutine).
func (s *Server) readActions(conn net.Conn, out chan<- session.Action, errs chan<- error, done <-chan struct{}) {
	for {
		body, err := protocol.ReadFrame(conn)
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
		action, err := protocol.DecodeAction(body)
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
		select {
		case out <- action:
		case <-done:
			return
		}
	}
}
