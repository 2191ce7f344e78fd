package dto

// CreateLocationRequest entrada para crear o reemplazar una ubicación.
type CreateLocationRequest struct {
	Address       string `json:"address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	SupermarketID int64  `json:"supermarketId" validate:"required,gt=0"`
	ProvinceID    int64  `json:"provinceId" validate:"required,gt=0"`
}

// LocationResponse salida de una ubicación con supermercado y provincia resumidos.
type LocationResponse struct {
	ID          int64                `json:"id"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	Supermarket *SupermarketResponse `json:"supermarket"`
	Province    *ProvinceResponse    `json:"province"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
