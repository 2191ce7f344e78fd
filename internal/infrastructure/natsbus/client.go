// Package natsbus reparte las notificaciones entre réplicas del API vía NATS:
// Publisher envía al subject compartido y Relay reenvía lo recibido al hub STOMP local.
package natsbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// Connect abre la conexión NATS con reconexión indefinida.
func Connect(url string, log *logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("ticket-logger-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("NATS desconectado")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconectado")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("natsbus: conectar a %s: %w", url, err)
	}
	log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS conectado")
	return nc, nil
}

// envelope mensaje en el subject: destino STOMP más el payload JSON ya serializado.
type envelope struct {
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
}
