package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToCategoryDTO proyecta una categoría. El padre se resume a un nivel; nunca se sigue Parent.Parent.
func ToCategoryDTO(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	out := &dto.CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image}
	if c.Parent != nil {
		out.ParentCategory = &dto.ParentCategoryResponse{
			ID:    c.Parent.ID,
			Name:  c.Parent.Name,
			Image: c.Parent.Image,
		}
	}
	return out
}

// ToCategoryEntity construye una categoría nueva con el padre ya resuelto (nil si es raíz).
// Image la asigna el caso de uso tras guardar el archivo.
func ToCategoryEntity(in *dto.CreateCategoryRequest, parent *entity.Category) *entity.Category {
	if in == nil {
		return nil
	}
	c := &entity.Category{Name: in.Name, Parent: parent}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	return c
}
