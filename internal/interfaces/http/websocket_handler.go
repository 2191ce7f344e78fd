package http

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	stompws "github.com/jhoicas/ticket-logger-api/internal/infrastructure/websocket"
)

// stompSubprotocols subprotocolos STOMP ofrecidos en el handshake.
var stompSubprotocols = []string{"v12.stomp", "v11.stomp", "v10.stomp"}

// WebSocketUpgrade rechaza peticiones que no son upgrade y guarda su Authorization,
// que el broker usa si el frame CONNECT no trae el header.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !fiberws.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals(localUpgradeAuth, c.Get(fiber.HeaderAuthorization))
		return c.Next()
	}
}

// WebSocketHandler atiende la sesión STOMP sobre la conexión WebSocket.
//
// @Summary      Broker STOMP 1.2
// @Description  Upgrade a WebSocket. El frame CONNECT debe traer Authorization: Bearer <token>.
// @Tags         notifications
// @Router       /ws [get]
func WebSocketHandler(hub *stompws.Hub, authn stompws.Authenticator) fiber.Handler {
	return fiberws.New(func(conn *fiberws.Conn) {
		fallback, _ := conn.Locals(localUpgradeAuth).(string)
		hub.Serve(conn, authn, fallback)
	}, fiberws.Config{Subprotocols: stompSubprotocols})
}
