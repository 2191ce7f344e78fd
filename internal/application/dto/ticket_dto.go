package dto

import "github.com/shopspring/decimal"

// CreateTicketRequest entrada para crear o reemplazar un ticket.
type CreateTicketRequest struct {
	Date       Date            `json:"date"`
	Discount   decimal.Decimal `json:"discount"`
	LocationID int64           `json:"locationId" validate:"required,gt=0"`
	ProductIDs []int64         `json:"productIds" validate:"required,min=1,dive,gt=0"`
}

// TicketResponse salida de un ticket.
// Total va siempre en null: la fórmula (suma de precios menos descuento) no está confirmada.
type TicketResponse struct {
	ID       int64             `json:"id"`
	Date     Date              `json:"date"`
	Discount decimal.Decimal   `json:"discount"`
	Total    *decimal.Decimal  `json:"total"`
	Location *LocationResponse `json:"location"`
	Products []ProductResponse `json:"products"`
}

// TicketListResponse lista paginada de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
