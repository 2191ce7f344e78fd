package mapper

import (
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ToTicketDTO proyecta un ticket con su ubicación y productos.
// TODO: poblar Total cuando se confirme la fórmula (¿suma de precios menos descuento absoluto o porcentual?).
func ToTicketDTO(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	products := make([]dto.ProductResponse, 0, len(t.Products))
	for _, p := range t.Products {
		if p == nil {
			continue
		}
		products = append(products, *ToProductDTO(p))
	}
	return &dto.TicketResponse{
		ID:       t.ID,
		Date:     dto.NewDate(t.Date),
		Discount: t.Discount,
		Location: ToLocationDTO(t.Location),
		Products: products,
	}
}

// ToTicketEntity construye un ticket nuevo con ubicación y productos ya resueltos.
func ToTicketEntity(in *dto.CreateTicketRequest, location *entity.Location, products []*entity.Product) *entity.Ticket {
	if in == nil {
		return nil
	}
	t := &entity.Ticket{
		Date:       in.Date.Time,
		Discount:   in.Discount,
		LocationID: in.LocationID,
		Location:   location,
		Products:   products,
	}
	if location != nil {
		t.LocationID = location.ID
	}
	return t
}
