package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

type capture struct {
	destination string
	payload     []byte
	deadline    bool
	err         error
	calls       int
}

func (c *capture) Publish(ctx context.Context, destination string, payload []byte) error {
	c.calls++
	c.destination = destination
	c.payload = payload
	_, c.deadline = ctx.Deadline()
	return c.err
}

func TestRelay_ReenviaAlPublisherLocal(t *testing.T) {
	local := &capture{}
	r := NewRelay(nil, "notifications", local, time.Second, logger.Nop())

	data, err := json.Marshal(envelope{Destination: "/topic/notifications", Payload: json.RawMessage(`{"subject":"a"}`)})
	require.NoError(t, err)
	r.handle(data)

	assert.Equal(t, 1, local.calls)
	assert.Equal(t, "/topic/notifications", local.destination)
	assert.JSONEq(t, `{"subject":"a"}`, string(local.payload))
	assert.True(t, local.deadline)
}

func TestRelay_DescartaMensajesInvalidos(t *testing.T) {
	local := &capture{}
	r := NewRelay(nil, "notifications", local, 0, logger.Nop())

	r.handle([]byte("no json"))
	r.handle([]byte(`{"payload":{}}`))

	assert.Zero(t, local.calls)
	assert.Equal(t, 5*time.Second, r.timeout)
}

func TestRelay_ErrorLocalSoloSeRegistra(t *testing.T) {
	local := &capture{err: errors.New("hub detenido")}
	r := NewRelay(nil, "notifications", local, time.Second, logger.Nop())

	assert.NotPanics(t, func() {
		r.handle([]byte(`{"destination":"/topic/notifications","payload":{}}`))
	})
	assert.Equal(t, 1, local.calls)
}

func TestPublisher_RechazaPayloadNoJSON(t *testing.T) {
	p := NewPublisher(nil, "notifications")
	assert.Error(t, p.Publish(context.Background(), "/topic/notifications", []byte("{")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, "/topic/notifications", []byte(`{}`)), context.Canceled)
}
