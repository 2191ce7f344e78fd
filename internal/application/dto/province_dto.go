package dto

// CreateProvinceRequest entrada para crear o reemplazar una provincia.
type CreateProvinceRequest struct {
	Code     string `json:"code" validate:"required,max=2"`
	Name     string `json:"name" validate:"required,max=100"`
	RegionID int64  `json:"regionId" validate:"required,gt=0"`
}

// ProvinceResponse salida de una provincia con el resumen de su región.
type ProvinceResponse struct {
	ID     int64           `json:"id"`
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Region *RegionResponse `json:"region"`
}

// ProvinceListResponse lista paginada de provincias.
type ProvinceListResponse struct {
	Items []ProvinceResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
