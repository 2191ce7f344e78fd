package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// TicketPDFGenerator genera la representación en PDF de un ticket.
type TicketPDFGenerator interface {
	GenerateTicketPDF(ctx context.Context, ticket *entity.Ticket) ([]byte, error)
}

// TicketReceiptUseCase descarga el comprobante PDF de un ticket.
type TicketReceiptUseCase struct {
	tickets   *TicketUseCase
	generator TicketPDFGenerator
}

// NewTicketReceiptUseCase construye el caso de uso.
func NewTicketReceiptUseCase(tickets *TicketUseCase, generator TicketPDFGenerator) *TicketReceiptUseCase {
	return &TicketReceiptUseCase{tickets: tickets, generator: generator}
}

// DownloadTicketPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
// Retorna domain.ErrNotFound si el ticket no existe.
func (uc *TicketReceiptUseCase) DownloadTicketPDF(ctx context.Context, ticketID int64) ([]byte, string, error) {
	t, err := uc.tickets.get(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateTicketPDF(ctx, t)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("ticket_%d.pdf", t.ID), nil
}
