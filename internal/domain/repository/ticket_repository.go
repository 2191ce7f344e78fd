package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// TicketRepository define el puerto de persistencia para Ticket (DIP).
// Create y Update escriben también la relación ticket_products; usar dentro de una transacción.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id int64) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	Delete(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, ticketID, productID int64) error
	RemoveProduct(ctx context.Context, ticketID, productID int64) error
}
