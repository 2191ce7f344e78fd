package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
)

// ProvinceHandler maneja las peticiones HTTP para Province.
type ProvinceHandler struct {
	uc *usecase.ProvinceUseCase
}

// NewProvinceHandler construye el handler.
func NewProvinceHandler(uc *usecase.ProvinceUseCase) *ProvinceHandler {
	return &ProvinceHandler{uc: uc}
}

// List godoc
// @Summary      Listar provincias
// @Tags         provinces
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProvinceListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Router       /api/provinces [get]
func (h *ProvinceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener provincia por ID
// @Tags         provinces
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.ProvinceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/provinces/{id} [get]
func (h *ProvinceHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear provincia
// @Tags         provinces
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProvinceRequest  true  "Datos"
// @Success      201   {object}  dto.ProvinceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/provinces [post]
func (h *ProvinceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProvinceRequest
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
// @Summary      Reemplazar provincia
// @Tags         provinces
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.CreateProvinceRequest  true  "Datos"
// @Success      200   {object}  dto.ProvinceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/provinces/{id} [put]
func (h *ProvinceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateProvinceRequest
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
// @Summary      Eliminar provincia
// @Tags         provinces
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/provinces/{id} [delete]
func (h *ProvinceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
