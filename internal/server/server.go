// Package server hosts one session.Controller behind a network listener,
// implementing the three task kinds of spec §4.H/§5: a single session task
// serialising actions, a listener task accepting connections, and one
// connection task per client fanning broadcast events out and actions in.
package server

import (
	"context"
	"log/slog"
	"net"
	"sync"

	goerrors "github.com/go-errors/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/session"
)

// actionQueueCapacity bounds the many-producer/single-consumer action
// channel (spec §5 "Capacity is fixed and small (order of tens)").
const actionQueueCapacity = 32

// request wraps an inbound action with an optional reply channel, used only
// for DumpAction: the session loop answers it directly rather than through
// the broadcast (spec §4.G).
type request struct {
	action session.Action
	reply  chan *session.Dump
}

// Server owns a session.Controller and drives it from one action channel,
// publishing the events it emits to a Broadcast (spec §4.H "Owns: one
// session, a bounded many-to-one action channel... a bounded broadcast
// channel of events").
type Server struct {
	Controller  *session.Controller
	Broadcast   *Broadcast
	Metrics     *Metrics
	Log         *slog.Logger
	ServerIdent string
	Version     protocol.Version

	actions chan request
}

// New builds a Server wired to controller, publishing its events through
// broadcast. It installs controller.Emit itself; callers must not set it
// separately.
func New(controller *session.Controller, broadcast *Broadcast, metrics *Metrics, logger *slog.Logger, ident string, version protocol.Version) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		Controller:  controller,
		Broadcast:   broadcast,
		Metrics:     metrics,
		Log:         logger,
		ServerIdent: ident,
		Version:     version,
		actions:     make(chan request, actionQueueCapacity),
	}
	controller.Emit = func(ev session.Event) {
		broadcast.Publish(ev)
	}
	return s
}

// RunSession runs the session task: drain one request, apply it, reply if
// requested, repeat (spec §4.H "The session loop is strictly
// single-threaded: it drains one action, applies it..., repeats"). It
// returns when ctx is cancelled.
func (s *Server) RunSession(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-s.actions:
			if s.Metrics != nil {
				s.Metrics.queueDepth(len(s.actions))
			}
			dump := s.Controller.Apply(ctx, req.action)
			if s.Metrics != nil {
				s.Metrics.actionApplied()
			}
			if req.reply != nil {
				req.reply <- dump
				close(req.reply)
			}
		}
	}
}

// submit enqueues an action, blocking if the queue is full (spec §5
// "Suspension points: channel send when full (back-pressure: producer
// waits)"). It returns false if ctx is cancelled first.
func (s *Server) submit(ctx context.Context, a session.Action, reply chan *session.Dump) bool {
	select {
	case s.actions <- request{action: a, reply: reply}:
		return true
	case <-ctx.Done():
		return false
	}
}

// Serve runs the listener task: accept connections until ctx is cancelled
// or the listener errors, spawning a connection task per accept (spec §4.H,
// §5 "One listener task accepts inbound connections"). Connection failures
// are logged and terminate only that connection (spec §4.H), never this
// task or the session task.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return goerrors.Wrap(err, 0)
		}
		connID := uuid.NewString()
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConnection(ctx, connID, conn)
		}()
	}
}

// Run wires RunSession and Serve (if ln is non-nil) into one errgroup, so
// a fatal error in either stops both via ctx cancellation (spec §5's
// session/listener task pairing; SPEC_FULL §5: the single errgroup.Wait()
// here, called from cmd/splitserver, collects the first fatal error and
// triggers shutdown).
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.RunSession(gctx) })
	if ln != nil {
		g.Go(func() error { return s.Serve(gctx, ln) })
	}
	return g.Wait()
}
