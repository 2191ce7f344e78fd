package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToNotificationDTO proyecta una notificación.
func ToNotificationDTO(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		Subject:   n.Subject,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationEntity construye una notificación nueva; ID y CreatedAt los asigna el servicio.
func ToNotificationEntity(in *dto.CreateNotificationRequest) *entity.Notification {
	if in == nil {
		return nil
	}
	return &entity.Notification{Subject: in.Subject, Message: in.Message, Read: in.Read}
}
