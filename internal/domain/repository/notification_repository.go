package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// NotificationRepository puerto del almacén documental de notificaciones.
type NotificationRepository interface {
	Save(ctx context.Context, n *entity.Notification) error
	// Stream recorre las notificaciones guardadas al momento de la llamada.
	// Un error se entrega como (nil, err) y termina la secuencia.
	Stream(ctx context.Context) iter.Seq2[*entity.Notification, error]
}
