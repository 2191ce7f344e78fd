package dto

// CreateSupermarketRequest entrada para crear o reemplazar un supermercado.
type CreateSupermarketRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SupermarketResponse salida de un supermercado.
type SupermarketResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SupermarketListResponse lista paginada de supermercados.
type SupermarketListResponse struct {
	Items []SupermarketResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
