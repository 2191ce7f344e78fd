package ports

import "context"

// TopicNotifications destino STOMP donde se difunden las notificaciones.
const TopicNotifications = "/topic/notifications"

// Publisher entrega un payload ya serializado a los suscriptores de un destino.
type Publisher interface {
	Publish(ctx context.Context, destination string, payload []byte) error
}
