package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// TicketRepo implementa repository.TicketRepository.
type TicketRepo struct{ s *Store }

func NewTicketRepository(s *Store) *TicketRepo { return &TicketRepo{s: s} }

var _ repository.TicketRepository = (*TicketRepo)(nil)

func (r *TicketRepo) load(id int64) (*entity.Ticket, bool) {
	v, ok := r.s.tickets[id]
	if !ok {
		return nil, false
	}
	if l, ok := r.s.loadLocation(v.LocationID); ok {
		v.Location = l
	}
	v.Products = nil
	for _, pid := range r.s.ticketProducts[id] {
		if p, ok := r.s.products[pid]; ok {
			v.Products = append(v.Products, &p)
		}
	}
	return &v, true
}

func (r *TicketRepo) write(t *entity.Ticket) error {
	if _, ok := r.s.locations[t.LocationID]; !ok {
		return missingRef("location", t.LocationID)
	}
	ids := t.ProductIDs()
	for _, pid := range ids {
		if _, ok := r.s.products[pid]; !ok {
			return missingRef("product", pid)
		}
	}
	v := *t
	v.Location, v.Products = nil, nil
	r.s.tickets[t.ID] = v
	r.s.ticketProducts[t.ID] = slices.Compact(ids)
	return nil
}

func (r *TicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.nextID()
	if err := r.write(t); err != nil {
		t.ID = 0
		return err
	}
	return nil
}

func (r *TicketRepo) GetByID(_ context.Context, id int64) (*entity.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, _ := r.load(id)
	return t, nil
}

func (r *TicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[t.ID]; !ok {
		return missingRef("ticket", t.ID)
	}
	return r.write(t)
}

func (r *TicketRepo) List(_ context.Context, limit, offset int) ([]*entity.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Ticket
	for _, id := range window(sortedIDs(r.s.tickets), limit, offset) {
		t, _ := r.load(id)
		out = append(out, t)
	}
	return out, nil
}

func (r *TicketRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tickets, id)
	delete(r.s.ticketProducts, id)
	return nil
}

func (r *TicketRepo) AddProduct(_ context.Context, ticketID, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[ticketID]; !ok {
		return missingRef("ticket", ticketID)
	}
	if _, ok := r.s.products[productID]; !ok {
		return missingRef("product", productID)
	}
	if slices.Contains(r.s.ticketProducts[ticketID], productID) {
		return duplicate("ticket_products", fmt.Sprintf("%d/%d", ticketID, productID))
	}
	r.s.ticketProducts[ticketID] = append(r.s.ticketProducts[ticketID], productID)
	return nil
}

func (r *TicketRepo) RemoveProduct(_ context.Context, ticketID, productID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := r.s.ticketProducts[ticketID]
	i := slices.Index(ids, productID)
	if i < 0 {
		return fmt.Errorf("ticket_products %d/%d: %w", ticketID, productID, domain.ErrNotFound)
	}
	r.s.ticketProducts[ticketID] = slices.Delete(ids, i, i+1)
	return nil
}
