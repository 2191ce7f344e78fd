// Package websocket implementa el broker STOMP sobre WebSocket del endpoint /ws:
// un Hub que difunde a las suscripciones locales y una sesión por conexión.
package websocket

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// ErrHubStopped se devuelve al publicar con el hub detenido.
var ErrHubStopped = errors.New("websocket: hub detenido")

var _ ports.Publisher = (*Hub)(nil)

type outbound struct {
	destination string
	payload     []byte
}

// Hub registro de sesiones STOMP. Un único goroutine (Run) posee el mapa de sesiones.
type Hub struct {
	register   chan *Session
	unregister chan *Session
	broadcast  chan outbound
	done       chan struct{}
	sessions   map[*Session]struct{}
	count      atomic.Int64
	log        *logger.Logger
}

// NewHub crea el hub; hay que lanzar Run.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *Session),
		unregister: make(chan *Session),
		broadcast:  make(chan outbound, 64),
		done:       make(chan struct{}),
		sessions:   make(map[*Session]struct{}),
		log:        log,
	}
}

// Run atiende registros y difusiones hasta que ctx termina; al salir cierra todas las sesiones.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case s := <-h.register:
			h.sessions[s] = struct{}{}
			h.count.Add(1)
			h.log.Info().Str("session", s.ID()).Str("sub", s.Principal().Subject).Msg("sesión STOMP conectada")

		case s := <-h.unregister:
			if _, ok := h.sessions[s]; ok {
				delete(h.sessions, s)
				h.count.Add(-1)
				h.log.Info().Str("session", s.ID()).Msg("sesión STOMP desconectada")
			}

		case m := <-h.broadcast:
			delivered := 0
			for s := range h.sessions {
				delivered += s.deliver(m.destination, m.payload)
			}
			h.log.Debug().Str("destination", m.destination).Int("delivered", delivered).Msg("difusión STOMP")

		case <-ctx.Done():
			for s := range h.sessions {
				s.close()
			}
			h.sessions = map[*Session]struct{}{}
			h.count.Store(0)
			return
		}
	}
}

// Publish entrega payload a todas las suscripciones a destination. Implementa ports.Publisher.
func (h *Hub) Publish(ctx context.Context, destination string, payload []byte) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}
	select {
	case h.broadcast <- outbound{destination: destination, payload: payload}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sessions número de sesiones conectadas.
func (h *Hub) Sessions() int {
	return int(h.count.Load())
}

func (h *Hub) add(s *Session) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}
