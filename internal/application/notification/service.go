// Package notification guarda notificaciones en el almacén documental y las difunde
// a los suscriptores de /topic/notifications.
package notification

import (
	"context"
	"encoding/json"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/internal/application/validation"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// Dispatch encola un payload para su publicación asíncrona.
type Dispatch interface {
	Dispatch(destination string, payload []byte) bool
}

// Service casos de uso de notificaciones.
type Service struct {
	repo       repository.NotificationRepository
	dispatcher Dispatch
	log        *logger.Logger
	now        func() time.Time
}

// NewService construye el servicio.
func NewService(repo repository.NotificationRepository, dispatcher Dispatch, log *logger.Logger) *Service {
	return &Service{repo: repo, dispatcher: dispatcher, log: log, now: time.Now}
}

// Save persiste la notificación y la encola para difusión. La respuesta no espera a la publicación.
func (s *Service) Save(ctx context.Context, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	n := mapper.ToNotificationEntity(&in)
	n.ID = uuid.NewString()
	n.CreatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, err
	}

	out := mapper.ToNotificationDTO(n)
	payload, err := json.Marshal(out)
	if err != nil {
		s.log.Error().Err(err).Str("id", n.ID).Msg("error serializando notificación")
		return out, nil
	}
	s.dispatcher.Dispatch(ports.TopicNotifications, payload)
	s.log.Info().Str("id", n.ID).Str("subject", n.Subject).Msg("notificación guardada")
	return out, nil
}

// ListAll recorre todas las notificaciones de forma perezosa.
func (s *Service) ListAll(ctx context.Context) iter.Seq2[*dto.NotificationResponse, error] {
	return func(yield func(*dto.NotificationResponse, error) bool) {
		for n, err := range s.repo.Stream(ctx) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(mapper.ToNotificationDTO(n), nil) {
				return
			}
		}
	}
}
