package term

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

func pipePair(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() { client.Close(); server.Close() })
	return client, server
}

func TestDialReadsInitialDump(t *testing.T) {
	client, server := pipePair(t)

	resp := protocol.DumpResponse{
		ServerIdent: "splitserver",
		Version:     protocol.Version{Major: 1},
		Dump:        session.Dump{Info: attempt.Info{Total: 5}},
	}
	go func() {
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeDumpResponse(resp)))
	}()

	c, got, err := Dial(client)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "splitserver", got.ServerIdent)
	assert.Equal(t, 5, got.Dump.Info.Total)
}

func TestClientDeliversEventsFromReadLoop(t *testing.T) {
	client, server := pipePair(t)

	go func() {
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeDumpResponse(protocol.DumpResponse{})))
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeEvent(session.ResetEvent{})))
	}()

	c, _, err := Dial(client)
	require.NoError(t, err)
	defer c.Close()

	select {
	case ev := <-c.Events:
		assert.Equal(t, session.ResetEvent{}, ev)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestClientReportsReadErrorOnServerClose(t *testing.T) {
	client, server := pipePair(t)

	go func() {
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeDumpResponse(protocol.DumpResponse{})))
		server.Close()
	}()

	c, _, err := Dial(client)
	require.NoError(t, err)
	defer c.Close()

	select {
	case err := <-c.Errs:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for read error")
	}
}

func TestClientSendEncodesAction(t *testing.T) {
	client, server := pipePair(t)

	go func() {
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeDumpResponse(protocol.DumpResponse{})))
	}()
	c, _, err := Dial(client)
	require.NoError(t, err)
	defer c.Close()

	done := make(chan struct{})
	var body []byte
	var readErr error
	go func() {
		body, readErr = protocol.ReadFrame(server)
		close(done)
	}()

	require.NoError(t, c.Send(session.PushAction{Index: 1, Time: timeval.FromMillis(100)}))

	select {
	case <-done:
		require.NoError(t, readErr)
		action, err := protocol.DecodeAction(body)
		require.NoError(t, err)
		assert.Equal(t, session.PushAction{Index: 1, Time: timeval.FromMillis(100)}, action)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sent action")
	}
}

func TestCloseStopsReadLoop(t *testing.T) {
	client, server := pipePair(t)
	go func() {
		require.NoError(t, protocol.WriteFrame(server, protocol.EncodeDumpResponse(protocol.DumpResponse{})))
	}()
	c, _, err := Dial(client)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = protocol.ReadFrame(server)
	assert.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}
