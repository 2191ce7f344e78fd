package dto

import "time"

// CreateNotificationRequest entrada para registrar una notificación.
type CreateNotificationRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Read    bool   `json:"read"`
}

// NotificationResponse salida de una notificación (también es el payload publicado).
type NotificationResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
