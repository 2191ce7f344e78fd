package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
// Create y Update reescriben ticket_products; llamarlos con una tx (TxRunner.RunTicket).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

func (r *TicketRepo) writeProducts(ctx context.Context, t *entity.Ticket) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ticket_products WHERE ticket_id = $1`, t.ID); err != nil {
		return fmt.Errorf("clear ticket products: %w", err)
	}
	for i, pid := range t.ProductIDs() {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO ticket_products (ticket_id, product_id, position) VALUES ($1, $2, $3)`,
			t.ID, pid, i); err != nil {
			return writeErr("insert ticket product", err)
		}
	}
	return nil
}

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (date, discount, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, t.Date, t.Discount, t.LocationID, t.CreatedAt, t.UpdatedAt).Scan(&t.ID); err != nil {
		return writeErr("insert ticket", err)
	}
	return r.writeProducts(ctx, t)
}

func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `UPDATE tickets SET date = $2, discount = $3, location_id = $4, updated_at = $5 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Date, t.Discount, t.LocationID, t.UpdatedAt); err != nil {
		return writeErr("update ticket", err)
	}
	return r.writeProducts(ctx, t)
}

// GetByID carga el ticket con su ubicación completa y sus productos en orden de alta.
func (r *TicketRepo) GetByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	var t entity.Ticket
	err := r.q.QueryRow(ctx,
		`SELECT id, date, discount, location_id, created_at, updated_at FROM tickets WHERE id = $1`, id).
		Scan(&t.ID, &t.Date, &t.Discount, &t.LocationID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if err := r.hydrate(ctx, []*entity.Ticket{&t}); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepo) List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, date, discount, location_id, created_at, updated_at FROM tickets ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.Date, &t.Discount, &t.LocationID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	if err := r.hydrate(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// hydrate carga ubicaciones y productos de los tickets con dos consultas en lote.
func (r *TicketRepo) hydrate(ctx context.Context, tickets []*entity.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(tickets))
	locIDs := make([]int64, 0, len(tickets))
	byID := make(map[int64]*entity.Ticket, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
		locIDs = append(locIDs, t.LocationID)
		byID[t.ID] = t
	}

	rows, err := r.q.Query(ctx, locationSelect+` WHERE l.id = ANY($1)`, locIDs)
	if err != nil {
		return fmt.Errorf("load ticket locations: %w", err)
	}
	locations := map[int64]*entity.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("scan location: %w", err)
		}
		locations[l.ID] = l
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load ticket locations: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT tp.ticket_id, p.id, p.name, p.price, p.created_at, p.updated_at
		FROM ticket_products tp
		JOIN products p ON p.id = tp.product_id
		WHERE tp.ticket_id = ANY($1)
		ORDER BY tp.ticket_id, tp.position`, ids)
	if err != nil {
		return fmt.Errorf("load ticket products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ticketID int64
		var p entity.Product
		if err := rows.Scan(&ticketID, &p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("scan ticket product: %w", err)
		}
		t := byID[ticketID]
		t.Products = append(t.Products, &p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load ticket products: %w", err)
	}
	for _, t := range tickets {
		t.Location = locations[t.LocationID]
	}
	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id); err != nil {
		return deleteErr("delete ticket", err)
	}
	return nil
}

// AddProduct enlaza un producto al final del ticket. ErrDuplicate si ya estaba.
func (r *TicketRepo) AddProduct(ctx context.Context, ticketID, productID int64) error {
	query := `
		INSERT INTO ticket_products (ticket_id, product_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0) FROM ticket_products WHERE ticket_id = $1`
	if _, err := r.q.Exec(ctx, query, ticketID, productID); err != nil {
		return writeErr("add ticket product", err)
	}
	return nil
}

// RemoveProduct quita el enlace. ErrNotFound si no existía.
func (r *TicketRepo) RemoveProduct(ctx context.Context, ticketID, productID int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ticket_products WHERE ticket_id = $1 AND product_id = $2`, ticketID, productID)
	if err != nil {
		return fmt.Errorf("remove ticket product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("remove ticket product: %w", domain.ErrNotFound)
	}
	return nil
}
