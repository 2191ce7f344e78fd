package memory

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// TxRunner ejecuta fn con el repositorio de tickets del store.
// Las escrituras de ticket en memoria son atómicas por sí mismas, no hay rollback que hacer.
type TxRunner struct{ s *Store }

func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) RunTicket(ctx context.Context, fn func(tickets repository.TicketRepository) error) error {
	return fn(NewTicketRepository(t.s))
}
