package http

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category.
// Create y Update aceptan multipart/form-data (name, parentCategoryId, imageFile) o JSON sin imagen.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// categoryForm lee los campos del formulario y abre la imagen si viene.
// El llamador debe cerrar el archivo devuelto.
func categoryForm(c *fiber.Ctx) (dto.CreateCategoryRequest, *dto.ImageUpload, multipart.File, error) {
	var in dto.CreateCategoryRequest
	if c.Is("json") {
		if err := bindJSON(c, &in); err != nil {
			return in, nil, nil, err
		}
		return in, nil, nil, nil
	}

	in.Name = c.FormValue("name")
	if raw := strings.TrimSpace(c.FormValue("parentCategoryId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, nil, nil, domain.Invalid(domain.MsgValidation, "parentCategoryId")
		}
		in.ParentCategoryID = &id
	}

	fh, err := c.FormFile("imageFile")
	if err != nil || fh == nil || fh.Size == 0 {
		return in, nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, nil, nil, domain.Invalid(domain.MsgInvalidBody)
	}
	return in, &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Content:     f,
	}, f, nil
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name              formData  string  true   "Nombre"
// @Param        parentCategoryId  formData  int     false  "Categoría padre"
// @Param        imageFile         formData  file    false  "Imagen"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, img, f, err := categoryForm(c)
	if err != nil {
		return writeError(c, err)
	}
	if f != nil {
		defer f.Close()
	}
	out, err := h.uc.Create(c.UserContext(), in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar categoría
// @Description  Sin imageFile se conserva la imagen actual; con imageFile se borra la anterior.
// @Tags         categories
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id                path      int     true   "ID"
// @Param        name              formData  string  true   "Nombre"
// @Param        parentCategoryId  formData  int     false  "Categoría padre"
// @Param        imageFile         formData  file    false  "Imagen"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	in, img, f, err := categoryForm(c)
	if err != nil {
		return writeError(c, err)
	}
	if f != nil {
		defer f.Close()
	}
	out, err := h.uc.Update(c.UserContext(), id, in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (y su imagen)
// @Tags         categories
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
