package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
)

// TicketHandler maneja tickets, sus productos y el comprobante PDF.
type TicketHandler struct {
	uc      *usecase.TicketUseCase
	receipt *usecase.TicketReceiptUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase, receipt *usecase.TicketReceiptUseCase) *TicketHandler {
	return &TicketHandler{uc: uc, receipt: receipt}
}

// List godoc
// @Summary      Listar tickets
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TicketListResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ticket por ID
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ticket
// @Description  Los productos inexistentes se ignoran si al menos uno existe. total siempre es null.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      200   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateTicketRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ticket
// @Tags         tickets
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TicketHandler) ticketAndProduct(c *fiber.Ctx) (int64, int64, error) {
	ticketID, err := paramID(c, "ticketId")
	if err != nil {
		return 0, 0, err
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return 0, 0, err
	}
	return ticketID, productID, nil
}

// AddProduct godoc
// @Summary      Asociar un producto al ticket
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        ticketId   path  int  true  "ID del ticket"
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse  "ya asociado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{ticketId}/products/{productId} [post]
func (h *TicketHandler) AddProduct(c *fiber.Ctx) error {
	ticketID, productID, err := h.ticketAndProduct(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddProduct(c.UserContext(), ticketID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveProduct godoc
// @Summary      Quitar un producto del ticket
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        ticketId   path  int  true  "ID del ticket"
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse  "no asociado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{ticketId}/products/{productId} [delete]
func (h *TicketHandler) RemoveProduct(c *fiber.Ctx) error {
	ticketID, productID, err := h.ticketAndProduct(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.RemoveProduct(c.UserContext(), ticketID, productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar comprobante PDF del ticket
// @Tags         tickets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/pdf [get]
func (h *TicketHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, filename, err := h.receipt.DownloadTicketPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
