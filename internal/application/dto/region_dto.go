package dto

// CreateRegionRequest entrada para crear o reemplazar una región.
type CreateRegionRequest struct {
	Code string `json:"code" validate:"required,max=2"`
	Name string `json:"name" validate:"required,max=100"`
}

// RegionResponse salida de una región.
type RegionResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegionListResponse lista paginada de regiones.
type RegionListResponse struct {
	Items []RegionResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
