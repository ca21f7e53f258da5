package term

import (
	"errors"
	"io"
	"net"

	goerrors "github.com/go-errors/errors"

	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/session"
)

// Client is the client side of the protocol connection: it reads the
// server's initial DumpResponse during Dial, then hands every subsequent
// decoded frame to Events or Errs from a background goroutine, mirroring
// the read-loop shape of internal/server/connection.go's readActions (spec
// §4.G, §6).
type Client struct {
	conn   net.Conn
	Events chan session.Event
	Errs   chan error
	done   chan struct{}
}

// Dial connects over conn, reads the server's initial dump, and starts the
// background read loop. The caller owns conn's lifetime via Close.
func Dial(conn net.Conn) (*Client, protocol.DumpResponse, error) {
	body, err := protocol.ReadFrame(conn)
	if err != nil {
		return nil, protocol.DumpResponse{}, goerrors.Wrap(err, 0)
	}
	resp, err := protocol.DecodeDumpResponse(body)
	if err != nil {
		return nil, protocol.DumpResponse{}, goerrors.Wrap(err, 0)
	}

	c := &Client{
		conn:   conn,
		Events: make(chan session.Event),
		Errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go c.readEvents()
	return c, resp, nil
}

// readEvents decodes frames until a read or decode error, or until done is
// closed by Close (so a send racing with shutdown can't leak this
// goroutine).
func (c *Client) readEvents() {
	for {
		body, err := protocol.ReadFrame(c.conn)
		if err != nil {
			c.deliverErr(err)
			return
		}
		ev, err := protocol.DecodeEvent(body)
		if err != nil {
			c.deliverErr(err)
			return
		}
		select {
		case c.Events <- ev:
		case <-c.done:
			return
		}
	}
}

func (c *Client) deliverErr(err error) {
	if errors.Is(err, io.EOF) {
		err = io.EOF
	}
	select {
	case c.Errs <- err:
	case <-c.done:
	}
}

// Send encodes and writes one action to the server.
func (c *Client) Send(a session.Action) error {
	return protocol.WriteFrame(c.conn, protocol.EncodeAction(a))
}

// Close stops the read loop and closes the underlying connection.
func (c *Client) Close() error {
	close(c.done)
	return c.conn.Close()
}
