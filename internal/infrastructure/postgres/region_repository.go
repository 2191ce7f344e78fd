package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.RegionRepository = (*RegionRepo)(nil)

// RegionRepo implementación del puerto RegionRepository sobre PostgreSQL.
type RegionRepo struct {
	q Querier
}

// NewRegionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegionRepository(q Querier) *RegionRepo {
	return &RegionRepo{q: q}
}

// Create persiste una región y asigna su ID.
func (r *RegionRepo) Create(ctx context.Context, region *entity.Region) error {
	query := `
		INSERT INTO regions (code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, region.Code, region.Name, region.CreatedAt, region.UpdatedAt).Scan(&region.ID)
	if err != nil {
		return writeErr("insert region", err)
	}
	return nil
}

// GetByID obtiene una región por ID; nil si no existe.
func (r *RegionRepo) GetByID(ctx context.Context, id int64) (*entity.Region, error) {
	query := `SELECT id, code, name, created_at, updated_at FROM regions WHERE id = $1`
	var v entity.Region
	err := r.q.QueryRow(ctx, query, id).Scan(&v.ID, &v.Code, &v.Name, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &v, nil
}

// Update sobrescribe código y nombre.
func (r *RegionRepo) Update(ctx context.Context, region *entity.Region) error {
	query := `UPDATE regions SET code = $2, name = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, region.ID, region.Code, region.Name, region.UpdatedAt); err != nil {
		return writeErr("update region", err)
	}
	return nil
}

// List lista regiones por ID con paginación.
func (r *RegionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Region, error) {
	query := `SELECT id, code, name, created_at, updated_at FROM regions ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Region
	for rows.Next() {
		var v entity.Region
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina una región. Falla con ErrInUse si tiene provincias.
func (r *RegionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM regions WHERE id = $1`, id); err != nil {
		return deleteErr("delete region", err)
	}
	return nil
}

func (r *RegionRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(ctx, r.q, "exists region code",
		`SELECT EXISTS (SELECT 1 FROM regions WHERE code = $1)`, code)
}

func (r *RegionRepo) ExistsByCodeAndNotID(ctx context.Context, code string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists region code",
		`SELECT EXISTS (SELECT 1 FROM regions WHERE code = $1 AND id <> $2)`, code, id)
}
