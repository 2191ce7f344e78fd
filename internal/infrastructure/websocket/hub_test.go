package websocket_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/auth"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/websocket"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// fakeConn conexión en memoria: in alimenta ReadMessage, lo escrito se decodifica a frames.
type fakeConn struct {
	in     chan []byte
	mu     sync.Mutex
	out    []*frame.Frame
	closed chan struct{}
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case b := <-c.in:
		return 1, b, nil
	case <-c.closed:
		return 0, nil, io.EOF
	}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	r := frame.NewReader(bytes.NewReader(data))
	f, err := r.Read()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.out = append(c.out, f)
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) frames() []*frame.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*frame.Frame(nil), c.out...)
}

func (c *fakeConn) last(command string) *frame.Frame {
	for _, f := range c.frames() {
		if f.Command == command {
			return f
		}
	}
	return nil
}

func (c *fakeConn) send(t *testing.T, fs ...*frame.Frame) {
	t.Helper()
	var buf bytes.Buffer
	w := frame.NewWriter(&buf)
	for _, f := range fs {
		require.NoError(t, w.Write(f))
	}
	c.in <- buf.Bytes()
}

type fakeAuth struct{}

func (fakeAuth) Authenticate(h string) (auth.Principal, error) {
	switch h {
	case "":
		return auth.Principal{}, auth.ErrMissingToken
	case "Bearer ok":
		return auth.Principal{Subject: "ticket-logger", Roles: []string{"user"}}, nil
	default:
		return auth.Principal{}, domain.ErrUnauthorized
	}
}

func startHub(t *testing.T) *websocket.Hub {
	t.Helper()
	h := websocket.NewHub(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)
	return h
}

func connect(t *testing.T, h *websocket.Hub, authHeader, fallback string) *fakeConn {
	t.Helper()
	c := newFakeConn()
	go h.Serve(c, fakeAuth{}, fallback)
	f := frame.New(frame.CONNECT, frame.AcceptVersion, "1.2", frame.Host, "localhost")
	if authHeader != "" {
		f.Header.Set("Authorization", authHeader)
	}
	c.send(t, f)
	return c
}

func TestServe_ConnectSinTokenDevuelveError(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "", "")

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	errFrame := c.last(frame.ERROR)
	require.NotNil(t, errFrame)
	assert.Contains(t, errFrame.Header.Get(frame.Message), "Authorization")
	assert.Nil(t, c.last(frame.CONNECTED))
	assert.Zero(t, h.Sessions())
}

func TestServe_TokenInvalido(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "Bearer malo", "")

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	require.NotNil(t, c.last(frame.ERROR))
	assert.Equal(t, "token inválido", c.last(frame.ERROR).Header.Get(frame.Message))
}

func TestServe_UsaAuthorizationDelUpgrade(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "", "Bearer ok")

	assert.Eventually(t, func() bool { return c.last(frame.CONNECTED) != nil }, time.Second, 5*time.Millisecond)
	connected := c.last(frame.CONNECTED)
	assert.Equal(t, "1.2", connected.Header.Get(frame.Version))
	assert.NotEmpty(t, connected.Header.Get(frame.Session))
	assert.Eventually(t, func() bool { return h.Sessions() == 1 }, time.Second, 5*time.Millisecond)
}

func TestServe_PrimerFrameDebeSerConnect(t *testing.T) {
	h := startHub(t)
	c := newFakeConn()
	go h.Serve(c, fakeAuth{}, "Bearer ok")
	c.send(t, frame.New(frame.SUBSCRIBE, frame.Id, "0", frame.Destination, "/topic/notifications"))

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	require.NotNil(t, c.last(frame.ERROR))
}

func TestHub_DifundeASuscriptores(t *testing.T) {
	h := startHub(t)
	sub := connect(t, h, "Bearer ok", "")
	other := connect(t, h, "Bearer ok", "")

	sub.send(t,
		frame.New(frame.SUBSCRIBE, frame.Id, "sub-0", frame.Destination, "/topic/notifications", frame.Receipt, "r1"),
	)
	other.send(t, frame.New(frame.SUBSCRIBE, frame.Id, "sub-0", frame.Destination, "/topic/otros"))

	assert.Eventually(t, func() bool { return sub.last(frame.RECEIPT) != nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "r1", sub.last(frame.RECEIPT).Header.Get(frame.ReceiptId))
	assert.Eventually(t, func() bool { return h.Sessions() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, h.Publish(context.Background(), "/topic/notifications", []byte(`{"subject":"hola"}`)))

	assert.Eventually(t, func() bool { return sub.last(frame.MESSAGE) != nil }, time.Second, 5*time.Millisecond)
	msg := sub.last(frame.MESSAGE)
	assert.Equal(t, "sub-0", msg.Header.Get(frame.Subscription))
	assert.Equal(t, "/topic/notifications", msg.Header.Get(frame.Destination))
	assert.Equal(t, "application/json", msg.Header.Get(frame.ContentType))
	assert.NotEmpty(t, msg.Header.Get(frame.MessageId))
	assert.JSONEq(t, `{"subject":"hola"}`, string(msg.Body))

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, other.last(frame.MESSAGE), "destino distinto no recibe")
}

func TestServe_UnsubscribeDejaDeRecibir(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "Bearer ok", "")
	c.send(t,
		frame.New(frame.SUBSCRIBE, frame.Id, "a", frame.Destination, "/topic/notifications"),
		frame.New(frame.UNSUBSCRIBE, frame.Id, "a", frame.Receipt, "u1"),
	)
	assert.Eventually(t, func() bool { return c.last(frame.RECEIPT) != nil }, time.Second, 5*time.Millisecond)

	require.NoError(t, h.Publish(context.Background(), "/topic/notifications", []byte(`{}`)))
	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, c.last(frame.MESSAGE))
}

func TestServe_DestinoNoPermitido(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "Bearer ok", "")
	c.send(t, frame.New(frame.SUBSCRIBE, frame.Id, "a", frame.Destination, "/app/x"))

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	require.NotNil(t, c.last(frame.ERROR))
}

func TestServe_SendNoSoportado(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "Bearer ok", "")
	c.send(t, frame.New(frame.SEND, frame.Destination, "/topic/notifications"))

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	require.NotNil(t, c.last(frame.ERROR))
	assert.Eventually(t, func() bool { return h.Sessions() == 0 }, time.Second, 5*time.Millisecond)
}

func TestServe_DisconnectConReceipt(t *testing.T) {
	h := startHub(t)
	c := connect(t, h, "Bearer ok", "")
	c.send(t, frame.New(frame.DISCONNECT, frame.Receipt, "bye"))

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	require.NotNil(t, c.last(frame.RECEIPT))
	assert.Equal(t, "bye", c.last(frame.RECEIPT).Header.Get(frame.ReceiptId))
	assert.Eventually(t, func() bool { return h.Sessions() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_PublishTrasDetener(t *testing.T) {
	h := websocket.NewHub(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() { h.Run(ctx); close(stopped) }()
	cancel()
	<-stopped

	err := h.Publish(context.Background(), "/topic/notifications", nil)
	assert.True(t, errors.Is(err, websocket.ErrHubStopped))
}

func TestServe_ErrorSeEscribeAntesDeCerrar(t *testing.T) {
	h := startHub(t)
	rejected := []*frame.Frame{
		nil, // CONNECT con token inválido
		frame.New(frame.SEND, frame.Destination, "/topic/notifications"),
		frame.New(frame.SUBSCRIBE, frame.Id, "a", frame.Destination, "/app/x"),
	}
	for i := 0; i < 100; i++ {
		for _, f := range rejected {
			var c *fakeConn
			if f == nil {
				c = connect(t, h, "Bearer malo", "")
			} else {
				c = connect(t, h, "Bearer ok", "")
				c.send(t, f)
			}
			require.Eventually(t, c.isClosed, time.Second, time.Millisecond)
			require.NotNil(t, c.last(frame.ERROR), "iteración %d: la conexión se cerró sin ERROR", i)
		}
	}
}
