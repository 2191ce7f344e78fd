package http

import (
	"bufio"
	"encoding/json"
	"iter"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/notification"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// NotificationHandler registra y lista notificaciones.
type NotificationHandler struct {
	svc *notification.Service
	log *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(svc *notification.Service, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Registrar notificación
// @Description  Persiste la notificación y la difunde en /topic/notifications sin esperar a la entrega.
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "Notificación"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ws/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todas las notificaciones
// @Description  Respuesta en streaming: array JSON ordenado por fecha de creación.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.NotificationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ws/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	next, stop := iter.Pull2(h.svc.ListAll(c.UserContext()))

	// El primer elemento se lee antes de fijar el status para poder responder 500.
	first, err, ok := next()
	if err != nil {
		stop()
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	log := h.log
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer stop()
		enc := json.NewEncoder(w)
		_, _ = w.WriteString("[")
		for n := 0; ok; n++ {
			if n > 0 {
				_, _ = w.WriteString(",")
			}
			if err := enc.Encode(first); err != nil {
				log.Error().Err(err).Msg("error al serializar notificación")
				break
			}
			if err := w.Flush(); err != nil {
				return
			}
			first, err, ok = next()
			if err != nil {
				log.Error().Err(err).Msg("lectura de notificaciones interrumpida")
				break
			}
		}
		_, _ = w.WriteString("]")
		_ = w.Flush()
	})
	return nil
}
