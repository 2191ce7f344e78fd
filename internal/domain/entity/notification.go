package entity

import "time"

// Notification aviso guardado en el almacén documental y difundido por /topic/notifications.
type Notification struct {
	ID        string
	Subject   string
	Message   string
	Read      bool
	CreatedAt time.Time
}
