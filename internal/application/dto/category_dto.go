package dto

import "io"

// CreateCategoryRequest entrada (multipart/form-data) para crear o reemplazar una categoría.
// La imagen llega aparte como ImageUpload.
type CreateCategoryRequest struct {
	Name             string `json:"name" form:"name" validate:"required,min=2,max=100"`
	ParentCategoryID *int64 `json:"parentCategoryId" form:"parentCategoryId" validate:"omitempty,gt=0"`
}

// ImageUpload archivo de imagen recibido en el formulario.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ParentCategoryResponse resumen del padre directo (sin abuelo).
type ParentCategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	Image          string                  `json:"image,omitempty"`
	ParentCategory *ParentCategoryResponse `json:"parentCategory"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
