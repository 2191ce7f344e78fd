package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// price es NUMERIC y se escanea a decimal.Decimal con el codec registrado en el pool.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `SELECT id, name, price, created_at, updated_at FROM products`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO products (name, price, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.q.QueryRow(ctx, query, p.Name, p.Price, p.CreatedAt, p.UpdatedAt).Scan(&p.ID); err != nil {
		return writeErr("insert product", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) collect(rows pgx.Rows, err error, op string) ([]*entity.Product, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByIDs devuelve los productos existentes entre ids, ordenados por ID.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, productSelect+` WHERE id = ANY($1) ORDER BY id`, ids)
	return r.collect(rows, err, "get products")
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `UPDATE products SET name = $2, price = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Price, p.UpdatedAt); err != nil {
		return writeErr("update product", err)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	return r.collect(rows, err, "list products")
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return deleteErr("delete product", err)
	}
	return nil
}

func (r *ProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.q, "exists product name",
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name)
}

func (r *ProductRepo) ExistsByNameAndNotID(ctx context.Context, name string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists product name",
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 AND id <> $2)`, name, id)
}
