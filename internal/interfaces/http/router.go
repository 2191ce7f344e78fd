package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/notification"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
	stompws "github.com/jhoicas/ticket-logger-api/internal/infrastructure/websocket"
	"github.com/jhoicas/ticket-logger-api/pkg/i18n"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegionUC        *usecase.RegionUseCase
	ProvinceUC      *usecase.ProvinceUseCase
	SupermarketUC   *usecase.SupermarketUseCase
	LocationUC      *usecase.LocationUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	TicketUC        *usecase.TicketUseCase
	TicketReceiptUC *usecase.TicketReceiptUseCase
	Notifications   *notification.Service

	Hub       *stompws.Hub
	Verifier  TokenVerifier
	AdminRole string
	Bundle    *i18n.Bundle
	Log       *logger.Logger

	// ImagesDir directorio servido en /images (almacenamiento local). Vacío = no se sirve.
	ImagesDir string
}

// crud rutas estándar de un recurso; Delete exige el rol administrador.
type crud interface {
	List(*fiber.Ctx) error
	GetByID(*fiber.Ctx) error
	Create(*fiber.Ctx) error
	Update(*fiber.Ctx) error
	Delete(*fiber.Ctx) error
}

func mount(r fiber.Router, h crud, admin fiber.Handler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", admin, h.Delete)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))
	app.Use(Localize(deps.Bundle))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "wsSessions": deps.Hub.Sessions()})
	})
	if deps.ImagesDir != "" {
		app.Static("/images", deps.ImagesDir)
	}

	requireAdmin := RequireRole(deps.AdminRole)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.Verifier))

	mount(api.Group("/regions"), NewRegionHandler(deps.RegionUC), requireAdmin)
	mount(api.Group("/provinces"), NewProvinceHandler(deps.ProvinceUC), requireAdmin)
	mount(api.Group("/supermarkets"), NewSupermarketHandler(deps.SupermarketUC), requireAdmin)
	mount(api.Group("/locations"), NewLocationHandler(deps.LocationUC), requireAdmin)
	mount(api.Group("/categories"), NewCategoryHandler(deps.CategoryUC), requireAdmin)
	mount(api.Group("/products"), NewProductHandler(deps.ProductUC), requireAdmin)

	tickets := api.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.TicketReceiptUC)
	mount(tickets, ticketHandler, requireAdmin)
	tickets.Get("/:id/pdf", ticketHandler.DownloadPDF)
	tickets.Post("/:ticketId/products/:productId", ticketHandler.AddProduct)
	tickets.Delete("/:ticketId/products/:productId", ticketHandler.RemoveProduct)

	// Notificaciones (REST) y broker STOMP. /ws autentica en el frame CONNECT.
	notificationHandler := NewNotificationHandler(deps.Notifications, deps.Log)
	notifications := app.Group("/ws/notifications", AuthMiddleware(deps.Verifier))
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)

	app.Get("/ws", WebSocketUpgrade(), WebSocketHandler(deps.Hub, deps.Verifier))
}
