package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.ProvinceRepository = (*ProvinceRepo)(nil)

// ProvinceRepo implementación del puerto ProvinceRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con regions.
type ProvinceRepo struct {
	q Querier
}

// NewProvinceRepository construye el adaptador.
func NewProvinceRepository(q Querier) *ProvinceRepo {
	return &ProvinceRepo{q: q}
}

const provinceSelect = `
	SELECT p.id, p.code, p.name, p.region_id, p.created_at, p.updated_at,
	       r.id, r.code, r.name, r.created_at, r.updated_at
	FROM provinces p
	JOIN regions r ON r.id = p.region_id`

func scanProvince(row pgx.Row) (*entity.Province, error) {
	var p entity.Province
	var reg entity.Region
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.RegionID, &p.CreatedAt, &p.UpdatedAt,
		&reg.ID, &reg.Code, &reg.Name, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		return nil, err
	}
	p.Region = &reg
	return &p, nil
}

func (r *ProvinceRepo) Create(ctx context.Context, p *entity.Province) error {
	query := `
		INSERT INTO provinces (code, name, region_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, p.Code, p.Name, p.RegionID, p.CreatedAt, p.UpdatedAt).Scan(&p.ID); err != nil {
		return writeErr("insert province", err)
	}
	return nil
}

func (r *ProvinceRepo) GetByID(ctx context.Context, id int64) (*entity.Province, error) {
	p, err := scanProvince(r.q.QueryRow(ctx, provinceSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get province: %w", err)
	}
	return p, nil
}

func (r *ProvinceRepo) Update(ctx context.Context, p *entity.Province) error {
	query := `UPDATE provinces SET code = $2, name = $3, region_id = $4, updated_at = $5 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Code, p.Name, p.RegionID, p.UpdatedAt); err != nil {
		return writeErr("update province", err)
	}
	return nil
}

func (r *ProvinceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Province, error) {
	rows, err := r.q.Query(ctx, provinceSelect+` ORDER BY p.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()
	var list []*entity.Province
	for rows.Next() {
		p, err := scanProvince(rows)
		if err != nil {
			return nil, fmt.Errorf("scan province: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProvinceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM provinces WHERE id = $1`, id); err != nil {
		return deleteErr("delete province", err)
	}
	return nil
}

func (r *ProvinceRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return exists(ctx, r.q, "exists province code",
		`SELECT EXISTS (SELECT 1 FROM provinces WHERE code = $1)`, code)
}

func (r *ProvinceRepo) ExistsByCodeAndNotID(ctx context.Context, code string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists province code",
		`SELECT EXISTS (SELECT 1 FROM provinces WHERE code = $1 AND id <> $2)`, code, id)
}
