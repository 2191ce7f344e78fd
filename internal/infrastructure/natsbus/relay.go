package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// Relay escucha el subject y entrega cada mensaje a un Publisher local (el hub STOMP).
type Relay struct {
	conn    *nats.Conn
	subject string
	local   ports.Publisher
	timeout time.Duration
	log     *logger.Logger
	sub     *nats.Subscription
}

// NewRelay crea el relé. timeout acota cada entrega local.
func NewRelay(conn *nats.Conn, subject string, local ports.Publisher, timeout time.Duration, log *logger.Logger) *Relay {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Relay{conn: conn, subject: subject, local: local, timeout: timeout, log: log}
}

// Start se suscribe al subject.
func (r *Relay) Start() error {
	sub, err := r.conn.Subscribe(r.subject, func(m *nats.Msg) { r.handle(m.Data) })
	if err != nil {
		return fmt.Errorf("natsbus: suscribir a %s: %w", r.subject, err)
	}
	r.sub = sub
	r.log.Info().Str("subject", r.subject).Msg("relé NATS iniciado")
	return nil
}

// Stop drena la suscripción.
func (r *Relay) Stop() error {
	if r.sub == nil {
		return nil
	}
	return r.sub.Drain()
}

func (r *Relay) handle(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Destination == "" {
		r.log.Warn().Err(err).Msg("mensaje NATS descartado")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.local.Publish(ctx, env.Destination, env.Payload); err != nil {
		r.log.Error().Err(err).Str("destination", env.Destination).Msg("error al reenviar mensaje NATS")
	}
}
