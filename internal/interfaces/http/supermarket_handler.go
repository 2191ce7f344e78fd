package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
)

// SupermarketHandler maneja las peticiones HTTP para Supermarket.
type SupermarketHandler struct {
	uc *usecase.SupermarketUseCase
}

// NewSupermarketHandler construye el handler.
func NewSupermarketHandler(uc *usecase.SupermarketUseCase) *SupermarketHandler {
	return &SupermarketHandler{uc: uc}
}

// List godoc
// @Summary      Listar supermercados
// @Tags         supermarkets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SupermarketListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Router       /api/supermarkets [get]
func (h *SupermarketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener supermercado por ID
// @Tags         supermarkets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.SupermarketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supermarkets/{id} [get]
func (h *SupermarketHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear supermercado
// @Tags         supermarkets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupermarketRequest  true  "Datos"
// @Success      201   {object}  dto.SupermarketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supermarkets [post]
func (h *SupermarketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupermarketRequest
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
// @Summary      Reemplazar supermercado
// @Tags         supermarkets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.CreateSupermarketRequest  true  "Datos"
// @Success      200   {object}  dto.SupermarketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supermarkets/{id} [put]
func (h *SupermarketHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSupermarketRequest
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
// @Summary      Eliminar supermercado
// @Tags         supermarkets
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supermarkets/{id} [delete]
func (h *SupermarketHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
