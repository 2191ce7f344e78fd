package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/notification"
	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/memory"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

type published struct {
	destination string
	payload     []byte
}

// recordingPublisher guarda lo publicado; block retiene cada Publish hasta que se cierre.
type recordingPublisher struct {
	mu    sync.Mutex
	got   []published
	err   error
	block chan struct{}
	ctxs  []context.Context
}

func (p *recordingPublisher) Publish(ctx context.Context, destination string, payload []byte) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, published{destination, payload})
	p.ctxs = append(p.ctxs, ctx)
	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.got)
}

func TestService_SaveDevuelveAntesDePublicar(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	d := notification.NewDispatcher(pub, notification.DispatcherConfig{Workers: 1, QueueSize: 4, PublishTimeout: time.Second}, logger.Nop())
	d.Start()
	svc := notification.NewService(memory.NewNotificationRepository(), d, logger.Nop())

	out, err := svc.Save(context.Background(), dto.CreateNotificationRequest{Subject: "A", Message: "B"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Read)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, 0, pub.count(), "la publicación no bloquea al escritor")

	close(pub.block)
	assert.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 10*time.Millisecond)

	pub.mu.Lock()
	ev := pub.got[0]
	pub.mu.Unlock()
	assert.Equal(t, ports.TopicNotifications, ev.destination)
	var payload dto.NotificationResponse
	require.NoError(t, json.Unmarshal(ev.payload, &payload))
	assert.Equal(t, out.ID, payload.ID)
	assert.Equal(t, "A", payload.Subject)
	assert.Equal(t, "B", payload.Message)

	require.NoError(t, d.Stop(context.Background()))
}

func TestService_SaveValida(t *testing.T) {
	svc := notification.NewService(memory.NewNotificationRepository(), &recordingDispatch{}, logger.Nop())
	_, err := svc.Save(context.Background(), dto.CreateNotificationRequest{Subject: "", Message: "B"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type recordingDispatch struct{ n int }

func (r *recordingDispatch) Dispatch(string, []byte) bool { r.n++; return true }

func TestService_ListAllEnOrden(t *testing.T) {
	disp := &recordingDispatch{}
	svc := notification.NewService(memory.NewNotificationRepository(), disp, logger.Nop())
	ctx := context.Background()
	for _, s := range []string{"uno", "dos", "tres"} {
		_, err := svc.Save(ctx, dto.CreateNotificationRequest{Subject: s, Message: "m"})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, disp.n)

	var subjects []string
	for n, err := range svc.ListAll(ctx) {
		require.NoError(t, err)
		subjects = append(subjects, n.Subject)
	}
	assert.Equal(t, []string{"uno", "dos", "tres"}, subjects)
}

func TestService_ListAllCortaConContextoCancelado(t *testing.T) {
	svc := notification.NewService(memory.NewNotificationRepository(), &recordingDispatch{}, logger.Nop())
	_, _ = svc.Save(context.Background(), dto.CreateNotificationRequest{Subject: "a", Message: "m"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var gotErr error
	for _, err := range svc.ListAll(ctx) {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, context.Canceled)
}

func TestDispatcher_ColaLlenaDescarta(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	d := notification.NewDispatcher(pub, notification.DispatcherConfig{Workers: 1, QueueSize: 1, PublishTimeout: time.Second}, logger.Nop())
	d.Start()

	assert.True(t, d.Dispatch("/topic/x", []byte("1")))
	// El worker toma el primero y queda bloqueado; el segundo ocupa la cola.
	assert.Eventually(t, func() bool { return d.Dispatch("/topic/x", []byte("2")) }, time.Second, 5*time.Millisecond)
	assert.False(t, d.Dispatch("/topic/x", []byte("3")))

	close(pub.block)
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 2, pub.count())
}

func TestDispatcher_ErrorDePublicacionSoloSeRegistra(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker caído")}
	d := notification.NewDispatcher(pub, notification.DispatcherConfig{Workers: 2, QueueSize: 8, PublishTimeout: 50 * time.Millisecond}, logger.Nop())
	d.Start()

	for i := 0; i < 3; i++ {
		assert.True(t, d.Dispatch("/topic/x", []byte("p")))
	}
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 3, pub.count())

	pub.mu.Lock()
	defer pub.mu.Unlock()
	for _, ctx := range pub.ctxs {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "cada publicación lleva timeout")
	}
}

func TestDispatcher_TrasStopNoAcepta(t *testing.T) {
	d := notification.NewDispatcher(&recordingPublisher{}, notification.DispatcherConfig{}, logger.Nop())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))
	assert.False(t, d.Dispatch("/topic/x", nil))
}
