package websocket

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-stomp/stomp/v3/frame"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ticket-logger-api/internal/application/auth"
)

// Conn es lo que la sesión necesita de una conexión WebSocket (*websocket.Conn de gofiber lo cumple).
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Authenticator verifica el header Authorization del frame CONNECT.
type Authenticator interface {
	Authenticate(authorization string) (auth.Principal, error)
}

const (
	headerAuthorization = "Authorization"
	sendBuffer          = 32
	serverName          = "ticket-logger-api"
)

// Session estado de una conexión STOMP. Solo tras un CONNECT válido tiene principal.
type Session struct {
	id   string
	conn Conn
	hub  *Hub

	principal auth.Principal

	mu     sync.RWMutex
	subs   map[string]string // subscription id → destination
	closed bool

	send   chan []byte
	done   chan struct{}
	msgSeq atomic.Uint64
	once   sync.Once
}

func newSession(hub *Hub, conn Conn) *Session {
	return &Session{
		id:   uuid.NewString(),
		conn: conn,
		hub:  hub,
		subs: map[string]string{},
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// ID identificador de la sesión (header session del CONNECTED).
func (s *Session) ID() string { return s.id }

// Principal identidad autenticada en el CONNECT.
func (s *Session) Principal() auth.Principal { return s.principal }

// Serve atiende la conexión hasta que el cliente se desconecta o la sesión se cierra.
// fallbackAuth es el header Authorization de la petición de upgrade, usado si el CONNECT no lo trae.
func (h *Hub) Serve(conn Conn, authn Authenticator, fallbackAuth string) {
	s := newSession(h, conn)
	go s.writeLoop()
	defer func() {
		h.remove(s)
		s.flushAndClose()
	}()

	connected := false
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		r := frame.NewReader(bytes.NewReader(data))
		for {
			f, err := r.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				s.fail("frame STOMP mal formado")
				return
			}
			if f == nil {
				continue // heart-beat
			}
			if !connected {
				if !s.handleConnect(f, authn, fallbackAuth) {
					return
				}
				if !h.add(s) {
					return
				}
				connected = true
				continue
			}
			if !s.handle(f) {
				return
			}
		}
	}
}

func (s *Session) handleConnect(f *frame.Frame, authn Authenticator, fallbackAuth string) bool {
	if f.Command != frame.CONNECT && f.Command != frame.STOMP {
		s.fail("se esperaba CONNECT")
		return false
	}
	header := f.Header.Get(headerAuthorization)
	if header == "" {
		header = fallbackAuth
	}
	p, err := authn.Authenticate(header)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			s.fail("falta el header Authorization")
		} else {
			s.fail("token inválido")
		}
		s.hub.log.Warn().Err(err).Str("session", s.id).Msg("CONNECT STOMP rechazado")
		return false
	}
	s.principal = p

	s.write(frame.New(frame.CONNECTED,
		frame.Version, "1.2",
		frame.HeartBeat, "0,0",
		frame.Session, s.id,
		frame.Server, serverName,
	))
	return true
}

// handle procesa un frame tras el CONNECT. Devuelve false si la sesión debe terminar.
func (s *Session) handle(f *frame.Frame) bool {
	switch f.Command {
	case frame.SUBSCRIBE:
		id := f.Header.Get(frame.Id)
		dest := f.Header.Get(frame.Destination)
		if id == "" || dest == "" {
			s.fail("SUBSCRIBE requiere id y destination")
			return false
		}
		if !strings.HasPrefix(dest, "/topic/") && !strings.HasPrefix(dest, "/queue/") {
			s.fail("destino no permitido: " + dest)
			return false
		}
		s.mu.Lock()
		s.subs[id] = dest
		s.mu.Unlock()
		s.receipt(f)
		return true

	case frame.UNSUBSCRIBE:
		id := f.Header.Get(frame.Id)
		s.mu.Lock()
		_, ok := s.subs[id]
		delete(s.subs, id)
		s.mu.Unlock()
		if !ok {
			s.fail("suscripción desconocida: " + id)
			return false
		}
		s.receipt(f)
		return true

	case frame.DISCONNECT:
		s.receipt(f)
		s.flushAndClose()
		return false

	case frame.CONNECT, frame.STOMP:
		s.fail("sesión ya conectada")
		return false

	default:
		s.fail("comando no soportado: " + f.Command)
		return false
	}
}

// deliver encola un MESSAGE por cada suscripción a destination. Devuelve cuántos encoló.
func (s *Session) deliver(destination string, payload []byte) int {
	s.mu.RLock()
	var ids []string
	for id, dest := range s.subs {
		if dest == destination {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	n := 0
	for _, id := range ids {
		f := frame.New(frame.MESSAGE,
			frame.Destination, destination,
			frame.Subscription, id,
			frame.MessageId, s.id+"-"+strconv.FormatUint(s.msgSeq.Add(1), 10),
			frame.ContentType, "application/json",
		)
		f.Body = payload
		if !s.write(f) {
			s.hub.log.Warn().Str("session", s.id).Msg("cliente STOMP lento, sesión cerrada")
			s.close()
			return n
		}
		n++
	}
	return n
}

func (s *Session) receipt(f *frame.Frame) {
	if r := f.Header.Get(frame.Receipt); r != "" {
		s.write(frame.New(frame.RECEIPT, frame.ReceiptId, r))
	}
}

// fail envía un ERROR y cierra la sesión tras vaciar la cola de salida.
func (s *Session) fail(msg string) {
	f := frame.New(frame.ERROR, frame.Message, msg, frame.ContentType, "text/plain")
	f.Body = []byte(msg)
	s.write(f)
	s.flushAndClose()
}

// write codifica el frame y lo encola sin bloquear. false si la sesión está cerrada o la cola llena.
func (s *Session) write(f *frame.Frame) bool {
	var buf bytes.Buffer
	if err := frame.NewWriter(&buf).Write(f); err != nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- buf.Bytes():
		return true
	default:
		return false
	}
}

// writeLoop escribe en orden lo encolado. Tras flushAndClose vacía la cola antes de cerrar;
// done solo corta la escritura en el cierre forzado (cliente lento o apagado del hub).
func (s *Session) writeLoop() {
	for {
		select {
		case msg, ok := <-s.send:
			if !ok {
				_ = s.conn.Close()
				return
			}
			if err := s.conn.WriteMessage(fiberws.TextMessage, msg); err != nil {
				s.close()
				return
			}
		case <-s.done:
			_ = s.conn.Close()
			return
		}
	}
}

// flushAndClose deja de aceptar frames y cierra la conexión cuando el writer vacía la cola.
func (s *Session) flushAndClose() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.send)
		s.mu.Unlock()
	})
}

// close cierra la conexión sin esperar a vaciar la cola.
func (s *Session) close() {
	s.flushAndClose()
	select {
	case <-s.done:
	default:
		s.mu.Lock()
		select {
		case <-s.done:
		default:
			close(s.done)
		}
		s.mu.Unlock()
	}
}
