package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.SupermarketRepository = (*SupermarketRepo)(nil)

// SupermarketRepo implementación del puerto SupermarketRepository sobre PostgreSQL.
type SupermarketRepo struct {
	q Querier
}

func NewSupermarketRepository(q Querier) *SupermarketRepo {
	return &SupermarketRepo{q: q}
}

func (r *SupermarketRepo) Create(ctx context.Context, sm *entity.Supermarket) error {
	query := `INSERT INTO supermarkets (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, query, sm.Name, sm.CreatedAt, sm.UpdatedAt).Scan(&sm.ID); err != nil {
		return writeErr("insert supermarket", err)
	}
	return nil
}

func (r *SupermarketRepo) GetByID(ctx context.Context, id int64) (*entity.Supermarket, error) {
	var v entity.Supermarket
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM supermarkets WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supermarket: %w", err)
	}
	return &v, nil
}

func (r *SupermarketRepo) Update(ctx context.Context, sm *entity.Supermarket) error {
	if _, err := r.q.Exec(ctx, `UPDATE supermarkets SET name = $2, updated_at = $3 WHERE id = $1`,
		sm.ID, sm.Name, sm.UpdatedAt); err != nil {
		return writeErr("update supermarket", err)
	}
	return nil
}

func (r *SupermarketRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supermarket, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM supermarkets ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supermarkets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supermarket
	for rows.Next() {
		var v entity.Supermarket
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supermarket: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *SupermarketRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM supermarkets WHERE id = $1`, id); err != nil {
		return deleteErr("delete supermarket", err)
	}
	return nil
}

func (r *SupermarketRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.q, "exists supermarket name",
		`SELECT EXISTS (SELECT 1 FROM supermarkets WHERE name = $1)`, name)
}

func (r *SupermarketRepo) ExistsByNameAndNotID(ctx context.Context, name string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists supermarket name",
		`SELECT EXISTS (SELECT 1 FROM supermarkets WHERE name = $1 AND id <> $2)`, name, id)
}
