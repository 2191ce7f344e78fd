package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher implementa ports.Publisher publicando en un subject NATS.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher crea el publicador sobre subject.
func NewPublisher(conn *nats.Conn, subject string) *Publisher {
	return &Publisher{conn: conn, subject: subject}
}

// Publish envía el payload envuelto con su destino. Con ctx vencido no publica.
func (p *Publisher) Publish(ctx context.Context, destination string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(payload) {
		return errors.New("natsbus: payload no es JSON")
	}
	data, err := json.Marshal(envelope{Destination: destination, Payload: payload})
	if err != nil {
		return fmt.Errorf("natsbus: serializar: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("natsbus: publicar en %s: %w", p.subject, err)
	}
	return nil
}
